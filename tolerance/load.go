package tolerance

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads tolerance settings from a .toml, .yaml or .yml file. Keys that
// are absent keep their default values.
func Load(path string) (Tolerance, error) {
	t := Tolerance{Distance: DefaultDistance, Angle: DefaultAngle}

	f, err := os.Open(path)
	if err != nil {
		return t, errors.Wrap(err, "opening tolerance settings")
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeReader(f, &t); err != nil {
			return t, errors.Wrapf(err, "decoding %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(&t); err != nil {
			return t, errors.Wrapf(err, "decoding %s", path)
		}
	default:
		return t, errors.Errorf("unsupported tolerance settings format %q", ext)
	}

	if !t.Valid() {
		return t, errors.Errorf("tolerance settings in %s must be positive, got distance=%g angle=%g", path, t.Distance, t.Angle)
	}
	return t, nil
}
