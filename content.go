package mdsegment

import "github.com/google/uuid"

// ContentType represents the type of content.
type ContentType int

const (
	// ContentTypeText represents a text message.
	ContentTypeText ContentType = iota
	// ContentTypeFile represents a file attachment.
	ContentTypeFile
	// ContentTypePhoto represents a photo attachment.
	ContentTypePhoto
)

// String returns the string representation of ContentType.
func (ct ContentType) String() string {
	switch ct {
	case ContentTypeText:
		return "text"
	case ContentTypeFile:
		return "file"
	case ContentTypePhoto:
		return "photo"
	default:
		return "unknown"
	}
}

// Trace source types.
const (
	SourceText      = "text"
	SourceCodeBlock = "code-block"
	SourceMermaid   = "mermaid"
)

// ContentTrace tracks where a piece of content came from.
type ContentTrace struct {
	ID         string         `json:"id"`
	SourceType string         `json:"source_type"`
	Extra      map[string]any `json:"extra,omitempty"`
}

func newTrace(source string, extra map[string]any) ContentTrace {
	return ContentTrace{
		ID:         uuid.NewString(),
		SourceType: source,
		Extra:      extra,
	}
}

// Content represents a piece of content ready to be sent via Telegram.
type Content interface {
	GetContentType() ContentType
	GetContentTrace() ContentTrace
}

// Text represents a text message.
type Text struct {
	Text         string          `json:"text"`
	Entities     []MessageEntity `json:"entities,omitempty"`
	ContentTrace ContentTrace    `json:"trace"`
}

// GetContentType returns ContentTypeText.
func (t *Text) GetContentType() ContentType { return ContentTypeText }

// GetContentTrace returns the content trace.
func (t *Text) GetContentTrace() ContentTrace { return t.ContentTrace }

// File represents a file attachment, used for long code blocks.
type File struct {
	FileName     string       `json:"file_name"`
	FileData     []byte       `json:"file_data"`
	ContentTrace ContentTrace `json:"trace"`
}

// GetContentType returns ContentTypeFile.
func (f *File) GetContentType() ContentType { return ContentTypeFile }

// GetContentTrace returns the content trace.
func (f *File) GetContentTrace() ContentTrace { return f.ContentTrace }

// Photo represents a rendered diagram. Caption holds the live-editor URL.
type Photo struct {
	FileName     string       `json:"file_name"`
	FileData     []byte       `json:"file_data"`
	Caption      string       `json:"caption,omitempty"`
	ContentTrace ContentTrace `json:"trace"`
}

// GetContentType returns ContentTypePhoto.
func (p *Photo) GetContentType() ContentType { return ContentTypePhoto }

// GetContentTrace returns the content trace.
func (p *Photo) GetContentTrace() ContentTrace { return p.ContentTrace }
