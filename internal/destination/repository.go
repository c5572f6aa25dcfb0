package destination

import (
	"context"

	"github.com/gosimple/slug"

	"github.com/sharath018/travel-agency-backend/internal/catalog"
)

type Repository struct {
	Client *catalog.Client
}

func NewRepository(c *catalog.Client) *Repository {
	return &Repository{Client: c}
}

func (r *Repository) FetchAll(ctx context.Context) ([]Destination, error) {
	raws, err := r.Client.FetchList(ctx, "/api/destinations", "destinations")
	if err != nil {
		return nil, err
	}

	out := make([]Destination, 0, len(raws))
	for _, raw := range raws {
		out = append(out, normalize(raw))
	}
	return out, nil
}

func normalize(raw map[string]any) Destination {
	name := catalog.PickString(raw, "name", "title", "city")

	d := Destination{
		ID:       catalog.PickString(raw, "id", "_id"),
		Name:     name,
		Country:  catalog.PickString(raw, "country", "region"),
		Featured: catalog.PickBool(raw, "featured", "is_featured", "isfeatured"),
	}

	d.Slug = catalog.PickString(raw, "slug")
	if d.Slug == "" {
		d.Slug = slug.Make(name)
	}

	d.Image = catalog.CollectImages(
		catalog.PickString(raw, "image", "thumbnail", "mainimage", "main_image"),
		catalog.PickList(raw, "images"),
	)[0]

	return d
}
