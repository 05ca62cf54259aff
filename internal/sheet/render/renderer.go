package render

import (
	"context"

	"github.com/gosimple/slug"
	"github.com/jaipurwood/prodsheet/internal/sheet/domain"
)

// Artifact is a rendered document ready to be streamed to the caller.
type Artifact struct {
	ContentType string
	Filename    string
	Bytes       []byte
}

// Renderer turns an assembled document into one artifact. Two backends
// coexist behind this interface: the client-printable HTML surface and
// the server-generated PDF download. Neither supersedes the other;
// callers pick per action.
type Renderer interface {
	Render(ctx context.Context, doc domain.Document) (Artifact, error)
}

func artifactName(doc domain.Document, ext string) string {
	ref := doc.Reference
	if ref == "" {
		ref = "untitled"
	}
	return slug.Make(string(doc.Kind)+"-"+ref) + ext
}
