package scriptgen

import "errors"

// ErrInvalidSceneReference is returned by scene-level lookups addressing a
// missing breakdown or an out-of-range scene index.
var ErrInvalidSceneReference = errors.New("invalid scene reference")

// Scenes extracts the scenes array from a breakdown payload. The shape is
// convention-based, so anything that does not look like
// {"script_breakdown":{"scenes":[...]}} counts as having no scenes.
func Scenes(payload map[string]any) []any {
	inner, ok := payload["script_breakdown"].(map[string]any)
	if !ok {
		return nil
	}
	scenes, ok := inner["scenes"].([]any)
	if !ok {
		return nil
	}
	return scenes
}

// SceneAt returns the scene object at the given index.
func SceneAt(payload map[string]any, index int) (map[string]any, error) {
	scenes := Scenes(payload)
	if index < 0 || index >= len(scenes) {
		return nil, ErrInvalidSceneReference
	}
	scene, ok := scenes[index].(map[string]any)
	if !ok {
		return nil, ErrInvalidSceneReference
	}
	return scene, nil
}
