package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when no built-in scene has the requested ID
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier
	Name        string // Display name derived from the ID
	Description string
}

type builtinScene struct {
	description string
	build       func(aspectRatio float64) *Scene
}

var builtinScenes = map[string]builtinScene{
	"cornell-box": {
		description: "Cornell box with a mirror sphere, an orange pillar and a glass sphere",
		build:       NewCornellScene,
	},
	"cornell-mirror": {
		description: "Cornell box with facing mirrors around a yellow sphere",
		build:       NewCornellMirrorScene,
	},
	"plane": {
		description: "Glass sphere on a checkerboard plane under a narrow spot light",
		build:       NewPlaneScene,
	},
	"mirror-sphere": {
		description: "Mirror sphere over a gradient floor lit by a point light",
		build:       NewMirrorSphereScene,
	},
}

// ListScenes returns every built-in scene sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for id, s := range builtinScenes {
		scenes = append(scenes, SceneInfo{
			ID:          id,
			Name:        titleCase(id),
			Description: s.description,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// NewByName builds the built-in scene with the given ID
func NewByName(id string, aspectRatio float64) (*Scene, error) {
	s, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	if aspectRatio <= 0 {
		return nil, fmt.Errorf("invalid aspect ratio %f for scene %q", aspectRatio, id)
	}
	return s.build(aspectRatio), nil
}

// titleCase converts a kebab-case or snake_case ID to Title Case
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
