package download

//go:generate $MOCKGEN -source=tag_processor.go -destination=mocks/tag_processor_mock.go

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	"github.com/oshokin/id3v2/v2"

	"github.com/oshokin/zspotify-grabber/internal/logger"
)

// TagProcessor defines the interface for writing metadata tags to audio files.
type TagProcessor interface {
	WriteTags(ctx context.Context, req *WriteTagsRequest) error
}

// WriteTagsRequest contains parameters for writing metadata to audio files.
type WriteTagsRequest struct {
	// TrackPath is the file path of the audio track.
	TrackPath string
	// Lossless selects FLAC Vorbis comments instead of ID3v2.
	Lossless bool
	// Tags contains the metadata to write.
	Tags *TrackTags
	// Cover is embedded as the front cover when set.
	Cover *CoverImage
}

// TagProcessorImpl provides the default implementation of TagProcessor.
type TagProcessorImpl struct{}

// NewTagProcessor creates a new TagProcessor instance.
func NewTagProcessor() *TagProcessorImpl {
	return new(TagProcessorImpl)
}

// WriteTags writes metadata to the audio file in the request.
func (tp *TagProcessorImpl) WriteTags(ctx context.Context, req *WriteTagsRequest) error {
	if req.TrackPath == "" {
		return ErrEmptyTrackPath
	}

	tags := req.Tags
	if tags == nil {
		tags = new(TrackTags)
	}

	if req.Lossless {
		return tp.writeFLACTags(ctx, req.TrackPath, tags, req.Cover)
	}

	return tp.writeMP3Tags(req.TrackPath, tags, req.Cover)
}

func (tp *TagProcessorImpl) writeFLACTags(ctx context.Context, trackPath string, tags *TrackTags, cover *CoverImage) error {
	f, err := flac.ParseFile(filepath.Clean(trackPath))
	if err != nil {
		return err
	}

	// Reuse the existing Vorbis comment block, if any.
	var (
		comment      *flacvorbis.MetaDataBlockVorbisComment
		commentIndex = -1
	)

	for idx, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}

		comment, err = flacvorbis.ParseFromMetaDataBlock(*meta)
		if err == nil {
			commentIndex = idx

			break
		}
	}

	if comment == nil {
		comment = flacvorbis.New()
	}

	for _, field := range vorbisFields(tags) {
		if field.value == "" {
			continue
		}

		if err = comment.Add(field.name, field.value); err != nil {
			return err
		}
	}

	commentMeta := comment.Marshal()
	if commentIndex >= 0 {
		f.Meta[commentIndex] = &commentMeta
	} else {
		f.Meta = append(f.Meta, &commentMeta)
	}

	if cover != nil {
		picture, pictureErr := flacpicture.NewFromImageData(
			flacpicture.PictureTypeFrontCover, "", cover.Data, cover.MIMEType)
		if pictureErr != nil {
			logger.Errorf(ctx, "Failed to embed image to FLAC: %v", pictureErr)
		} else {
			pictureMeta := picture.Marshal()
			f.Meta = append(f.Meta, &pictureMeta)
		}
	}

	return f.Save(trackPath)
}

type vorbisField struct {
	name  string
	value string
}

// vorbisFields lists the Vorbis comments of tags in a stable order.
func vorbisFields(tags *TrackTags) []vorbisField {
	return []vorbisField{
		{"TITLE", tags.Title},
		{"ARTIST", tags.Artist},
		{"ALBUM", tags.Album},
		{"ALBUMARTIST", tags.AlbumArtist},
		{"GENRE", tags.Genre},
		{"DATE", tags.ReleaseDate},
		{"YEAR", tags.Year},
		{"TRACKNUMBER", formatPositive(tags.TrackNumber)},
		{"TOTALTRACKS", formatPositive(tags.TrackCount)},
		{"DISCNUMBER", formatPositive(tags.DiscNumber)},
		{"TRACK_ID", tags.TrackID},
		{"COLLECTION_ID", tags.CollectionID},
	}
}

func (tp *TagProcessorImpl) writeMP3Tags(trackPath string, tags *TrackTags, cover *CoverImage) error {
	//nolint:exhaustruct // ParseFrames intentionally omitted when Parse=false (parsing disabled).
	tag, err := id3v2.Open(trackPath, id3v2.Options{Parse: false})
	if err != nil {
		return err
	}

	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(tags.Title)
	tag.SetArtist(tags.Artist)
	tag.SetAlbum(tags.Album)
	tag.SetGenre(tags.Genre)
	tag.SetYear(tags.Year)

	if tags.TrackNumber > 0 {
		position := strconv.FormatInt(tags.TrackNumber, 10)
		if tags.TrackCount > 0 {
			position += "/" + strconv.FormatInt(tags.TrackCount, 10)
		}

		tag.AddTextFrame(tag.CommonID("Track number/Position in set"), tag.DefaultEncoding(), position)
	}

	if tags.DiscNumber > 0 {
		tag.AddTextFrame(tag.CommonID("Part of a set"), tag.DefaultEncoding(), strconv.FormatInt(tags.DiscNumber, 10))
	}

	if tags.AlbumArtist != "" {
		tag.AddTextFrame(tag.CommonID("Band/Orchestra/Accompaniment"), tag.DefaultEncoding(), tags.AlbumArtist)
	}

	if cover != nil {
		//nolint:exhaustruct // Description field intentionally empty for cover images.
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    cover.MIMEType,
			PictureType: id3v2.PTFrontCover,
			Picture:     cover.Data,
		})
	}

	return tag.Save()
}

// formatPositive formats n, or returns "" for values that carry no information.
func formatPositive(n int64) string {
	if n <= 0 {
		return ""
	}

	return strconv.FormatInt(n, 10)
}
