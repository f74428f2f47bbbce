package interfaces

import (
	"context"

	domaintypes "cardreveal/internal/domain/types"
)

// AssetCatalog supplies the prompt, feature and image lists for a session.
//
// Implementations must return a usable (possibly partially empty) Catalog
// alongside ErrAssetUnavailable when one or more lists could not be read,
// so callers can continue with fallback values.
type AssetCatalog interface {
	Load(ctx context.Context) (domaintypes.Catalog, error)
}
