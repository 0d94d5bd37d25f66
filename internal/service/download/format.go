package download

import (
	"fmt"

	"github.com/oshokin/zspotify-grabber/internal/config"
	"github.com/oshokin/zspotify-grabber/internal/constants"
)

// formatSpec describes the file produced for a download format.
type formatSpec struct {
	// extension is the track file extension.
	extension string
	// bitrateKbps is the nominal bitrate used for real-time pacing.
	bitrateKbps int64
	// lossless selects Vorbis comments instead of ID3v2 tags.
	lossless bool
}

// formatSpecs maps every config format to its file layout.
//
//nolint:gochecknoglobals,mnd // Immutable lookup table used as a constant.
var formatSpecs = map[string]formatSpec{
	config.FormatMP3High: {extension: constants.ExtensionMP3, bitrateKbps: 320},
	config.FormatMP3Mid:  {extension: constants.ExtensionMP3, bitrateKbps: 128},
	config.FormatFLAC:    {extension: constants.ExtensionFLAC, bitrateKbps: 1411, lossless: true},
}

func lookupFormat(format string) (formatSpec, error) {
	spec, ok := formatSpecs[format]
	if !ok {
		return formatSpec{}, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, format)
	}

	return spec, nil
}
