package tqw

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// manifStack is for two reasons ->
// * detect circular deps (not an error, but we need to know to avoid them)
// * avoid infinite recursion (allow up to MaxManifestRecursionDepth levels)
//
// Returns ErrManifestEmpty if and only if the first manifest in the stack is
// empty, otherwise it is not an error.
func recursiveUnmarshalResource(path string, manifStack []string) (topLevelWorldData, error) {
	path = filepath.Clean(path)

	fileData, err := os.ReadFile(path)
	if err != nil {
		return topLevelWorldData{}, fmt.Errorf("%q: reading from disk: %w", path, err)
	}

	fileInfo, err := ScanFileInfo(fileData)
	if err != nil {
		return topLevelWorldData{}, fmt.Errorf("%q: detecting file type: %w", path, err)
	}

	if !strings.EqualFold(fileInfo.Format, FormatName) {
		return topLevelWorldData{}, fmt.Errorf("%q: file does not have a 'format = \"%s\"' entry", path, FormatName)
	}

	switch strings.ToUpper(fileInfo.Type) {
	case "DATA":
		unmarshaled, err := unmarshalWorldData(fileData)
		if err != nil {
			return unmarshaled, fmt.Errorf("world data file %q: %w", path, err)
		}
		return unmarshaled, nil
	case "MANIFEST":
		if len(manifStack) >= MaxManifestRecursionDepth {
			return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, ErrManifestStackOverflow)
		}
		for i := range manifStack {
			if manifStack[i] == path {
				return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, ErrManifestCircularRef)
			}
		}

		manif, err := unmarshalManifest(fileData)
		if err != nil {
			return topLevelWorldData{}, fmt.Errorf("manifest file %q: %w", path, err)
		}

		manifSubStack := make([]string, len(manifStack)+1)
		copy(manifSubStack, manifStack)
		manifSubStack[len(manifSubStack)-1] = path

		manifDir := filepath.Dir(path)

		var combined topLevelWorldData
		processedFiles := 0

		for _, manifRelPath := range manif.Files {
			included, err := recursiveUnmarshalResource(filepath.Join(manifDir, manifRelPath), manifSubStack)
			if err != nil {
				// a circular reference just means it is already being loaded
				if errors.Is(err, ErrManifestCircularRef) {
					continue
				}
				return topLevelWorldData{}, fmt.Errorf("in file referred to by manifest file %q: %w", path, err)
			}

			if err := mergeWorldData(&combined, included); err != nil {
				return topLevelWorldData{}, fmt.Errorf("manifest file %q: including %q: %w", path, manifRelPath, err)
			}
			processedFiles++
		}

		if len(manifStack) == 0 && processedFiles == 0 {
			return combined, fmt.Errorf("manifest file %q: %w", path, ErrManifestEmpty)
		}
		return combined, nil

	default:
		return topLevelWorldData{}, fmt.Errorf("%q: file does not have 'type = ' entry set to either \"DATA\" or \"MANIFEST\"", path)
	}
}

// mergeWorldData adds everything in src to dest. Each key of the world table
// and the player table may only be given by one file.
func mergeWorldData(dest *topLevelWorldData, src topLevelWorldData) error {
	fields := []struct {
		key      string
		dst, val *string
	}{
		{"start", &dest.World.Start, &src.World.Start},
		{"welcome", &dest.World.Welcome, &src.World.Welcome},
		{"goal", &dest.World.Goal, &src.World.Goal},
		{"ending", &dest.World.Ending, &src.World.Ending},
	}
	for _, f := range fields {
		if *f.val == "" {
			continue
		}
		if *f.dst != "" {
			return fmt.Errorf("duplicate world.%s; it has already been defined as %q", f.key, *f.dst)
		}
		*f.dst = *f.val
	}

	if src.Player != nil {
		if dest.Player != nil {
			return fmt.Errorf("duplicate player table")
		}
		dest.Player = src.Player
	}

	dest.Rooms = append(dest.Rooms, src.Rooms...)
	return nil
}

// unmarshalWorldData unmarshals world data from the given bytes. It does not
// check the world data.
func unmarshalWorldData(tomlData []byte) (topLevelWorldData, error) {
	var tqw topLevelWorldData
	if err := toml.Unmarshal(tomlData, &tqw); err != nil {
		return tqw, err
	}

	if !strings.EqualFold(tqw.Format, FormatName) {
		return tqw, fmt.Errorf("in header: 'format' key must exist and be set to '%s'", FormatName)
	}
	if strings.ToUpper(tqw.Type) != "DATA" {
		return tqw, fmt.Errorf("in header: 'type' must exist and be set to 'DATA'")
	}

	return tqw, nil
}

// unmarshalManifest unmarshals a TQW manifest from the given bytes.
func unmarshalManifest(tomlData []byte) (topLevelManifest, error) {
	var tqw topLevelManifest
	if err := toml.Unmarshal(tomlData, &tqw); err != nil {
		return tqw, err
	}

	if !strings.EqualFold(tqw.Format, FormatName) {
		return tqw, fmt.Errorf("in header: 'format' key must exist and be set to '%s'", FormatName)
	}
	if strings.ToUpper(tqw.Type) != "MANIFEST" {
		return tqw, fmt.Errorf("in header: 'type' must exist and be set to 'MANIFEST'")
	}

	return tqw, nil
}
