package scene

import (
	"fmt"
	"sort"

	"github.com/prism-render/prism/pkg/geometry"
)

// Builder constructs a scene, optionally overriding camera parameters
type Builder func(cameraOverrides ...geometry.CameraConfig) *Scene

// Info describes a registered scene for discovery by the CLI and web server
type Info struct {
	Name        string
	Description string
	Build       Builder
}

var registry = map[string]Info{
	"default": {
		Name:        "default",
		Description: "Diffuse cube and spheres in a white room with a point light",
		Build:       NewDefaultScene,
	},
	"weekend": {
		Name:        "weekend",
		Description: "Two gray spheres under a sky gradient with a sun light",
		Build:       NewWeekendScene,
	},
}

// Get returns the builder for a scene by name
func Get(name string) (Info, error) {
	info, ok := registry[name]
	if !ok {
		return Info{}, fmt.Errorf("unknown scene %q", name)
	}
	return info, nil
}

// List returns all registered scenes sorted by name
func List() []Info {
	infos := make([]Info, 0, len(registry))
	for _, info := range registry {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
