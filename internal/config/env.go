package config

import (
	"strings"

	"github.com/spf13/viper"
)

// applyEnv overlays DEFA_<KEY> environment variables onto cfg. Only variables
// that are actually set are applied; values go through set so they get the
// same validation as `defa config set`. The file value of every overridden
// key is remembered so Save does not persist a one-run override.
func applyEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range Keys {
		if err := v.BindEnv(key); err != nil {
			return err
		}
		if !v.IsSet(key) {
			continue
		}
		prev, err := cfg.Get(key)
		if err != nil {
			return err
		}
		if err := cfg.set(key, v.GetString(key)); err != nil {
			return err
		}
		if cfg.shadowed == nil {
			cfg.shadowed = make(map[string]string)
		}
		cfg.shadowed[key] = prev
	}
	return nil
}
