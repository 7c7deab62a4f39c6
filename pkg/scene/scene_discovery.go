package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by Create for names with no built-in scene
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string // Identifier used on the command line
	DisplayName string
	Description string
	create      func() *Scene
}

var builtins = map[string]SceneInfo{
	"default": {
		Name:        "default",
		DisplayName: "Default",
		Description: "Magenta sphere in front of a large blue sphere",
		create:      NewDefaultScene,
	},
	"single": {
		Name:        "single",
		DisplayName: "Single Sphere",
		Description: "One white sphere filling the middle of the frame",
		create:      NewSingleSphereScene,
	},
	"grid": {
		Name:        "grid",
		DisplayName: "Sphere Grid",
		Description: "10x10 grid of colored spheres",
		create:      NewSphereGridScene,
	},
	"empty": {
		Name:        "empty",
		DisplayName: "Empty",
		Description: "No spheres, background only",
		create:      func() *Scene { return New() },
	},
}

// ListScenes returns all built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, info := range builtins {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Names returns the names of all built-in scenes, sorted
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, info := range scenes {
		names[i] = info.Name
	}
	return names
}

// Create builds a fresh copy of the named built-in scene
func Create(name string) (*Scene, error) {
	info, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return info.create(), nil
}
