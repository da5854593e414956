package validate

import (
	"github.com/unlockegypt/contentsync/pkg/content"
)

// ImageRef points at one external image URL found in the dataset,
// with enough context to report a probe failure against its row.
type ImageRef struct {
	Table string
	Row   int
	Field string
	URL   string
}

// CollectRemoteImages returns every external image URL referenced by
// cards, in table order. Local image names are skipped; only http(s)
// references can be probed.
func CollectRemoteImages(t *content.Tables) []ImageRef {
	var res []ImageRef
	for _, card := range t.Cards {
		if IsRemoteURL(card.ImageURL) {
			res = append(res, ImageRef{
				Table: content.TableCards,
				Row:   card.Row,
				Field: "imageUrl",
				URL:   card.ImageURL,
			})
		}
	}
	return res
}
