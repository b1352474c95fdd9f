package port

import (
	"context"

	"adzone/internal/core/domain"
)

// CreativeRenderer turns a stored creative into sanitized, render-ready markup.
type CreativeRenderer interface {
	Render(ctx context.Context, ad domain.Ad, view domain.View) (string, error)
}
