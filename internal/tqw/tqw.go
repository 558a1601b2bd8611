// Package tqw has functions for loading game data using the TQW (TextQuest
// Worlds) game data file format, a TOML-based format that is used to define
// game worlds for the engine to run.
//
// A file is either a DATA file, which defines rooms, the items in them and the
// player, or a MANIFEST file, which lists other files to load, relative to the
// manifest. Every file begins with the header keys:
//
//	format = "TQW"
//	type = "DATA"
package tqw

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/BurntSushi/toml"
)

// FormatName is the value of the 'format' key in every TQW file.
const FormatName = "TQW"

const MaxManifestRecursionDepth = 32

var (
	// ErrManifestEmpty is the error returned when a manifest file is read
	// successfully but specifies no additional files to load.
	ErrManifestEmpty = errors.New("does not list any valid files to include")

	// ErrManifestStackOverflow is the error returned when the recursion level
	// of MaxManifestRecursionDepth is reached and an additional Manifest is
	// then specified, which would cause recursion to go deeper.
	ErrManifestStackOverflow = errors.New("too many manifests deep")

	// ErrManifestCircularRef is the error returned when a manifest specifies
	// any series of files that with their own manifests refer back to the
	// original manifest, and therefore cannot be followed.
	ErrManifestCircularRef = errors.New("manifest inclusion chain refers back to itself")
)

// FileInfo contains the essential information all TQW format files must
// contain. It can be obtained from a file by reading it into memory and calling
// ScanFileInfo on the bytes.
type FileInfo struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
}

// Load loads a world from the TQW file at path. The file can be either a DATA
// file or a MANIFEST file; for a manifest, every file it lists is loaded and
// combined into one set of data before it is checked.
func Load(path string) (*WorldData, error) {
	unmarshaled, err := recursiveUnmarshalResource(path, nil)
	if err != nil {
		return nil, err
	}

	return parseWorldData(unmarshaled)
}

// Parse loads a world from the bytes of a single TQW DATA file.
func Parse(data []byte) (*WorldData, error) {
	unmarshaled, err := unmarshalWorldData(data)
	if err != nil {
		return nil, fmt.Errorf("decode world data: %w", err)
	}

	return parseWorldData(unmarshaled)
}

// ScanFileInfo takes the given data bytes of bytes and attempts to read the TQW
// format common header info from it. The bytes are read up to the first
// instance of a table definition header and those bytes are parsed for the
// info. If there is an error reading the info, returns a non-nil error.
func ScanFileInfo(data []byte) (FileInfo, error) {
	// only run the toml parser up to the end of the top-level table
	topLevelEnd := -1
	onNewLine := true
	for b := range data {
		if onNewLine && data[b] == '[' {
			topLevelEnd = b
			break
		}

		if data[b] == '\n' {
			onNewLine = true
		} else if !unicode.IsSpace(rune(data[b])) {
			onNewLine = false
		}
	}

	scanData := data
	if topLevelEnd != -1 {
		scanData = data[:topLevelEnd]
	}

	var info FileInfo
	err := toml.Unmarshal(scanData, &info)
	return info, err
}
