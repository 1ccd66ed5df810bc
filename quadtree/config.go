package quadtree

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"go.viam.com/qtree/logging"
	"go.viam.com/qtree/spatialmath"
)

// Config describes the region and depth of a tree.
type Config struct {
	Min   r3.Vector `json:"min"`
	Max   r3.Vector `json:"max"`
	Depth uint8     `json:"depth"`
}

// ConfigFromAttributes decodes a loosely typed attribute map, such as a section of a larger JSON
// document, into a Config. Unknown keys are rejected.
func ConfigFromAttributes(attributes map[string]interface{}) (*Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "cannot decode quadtree config")
	}
	return &cfg, nil
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	if cfg.Depth == 0 {
		return goutils.NewConfigValidationFieldRequiredError(path, "depth")
	}
	if cfg.Depth > MaxTreeDepth {
		return goutils.NewConfigValidationError(path,
			errors.Errorf("depth cannot be higher than %d, got %d", MaxTreeDepth, cfg.Depth))
	}
	if _, err := cfg.BoundingBox(); err != nil {
		return goutils.NewConfigValidationError(path, err)
	}
	return nil
}

// BoundingBox returns the root region described by the config.
func (cfg *Config) BoundingBox() (spatialmath.BoundingBox, error) {
	return spatialmath.NewBoundingBox(cfg.Min, cfg.Max)
}

// NewFromConfig validates cfg and returns a tree initialized from it.
func NewFromConfig[T Element](cfg *Config, logger logging.Logger) (*QuadTree[T], error) {
	if cfg == nil {
		return nil, errors.New("quadtree config is nil")
	}
	if err := cfg.Validate("quadtree"); err != nil {
		return nil, err
	}
	box, err := cfg.BoundingBox()
	if err != nil {
		return nil, err
	}
	qt := New[T](logger)
	qt.Initialize(box, cfg.Depth)
	return qt, nil
}
