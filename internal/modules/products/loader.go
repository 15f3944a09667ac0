// Package products loads categories and products from the remote API and
// applies the client-side text search. Category switches are sequence
// guarded: when the selection changes while a fetch is in flight, the stale
// response is discarded instead of overwriting the newer one.
package products

import (
	"context"
	"strings"
	"sync"

	"github.com/neekunjchaturvedi/kisanfront/internal/api"
)

// CategoryAll is the synthetic aggregate entry prepended to the category
// list; its count is the sum of the per-category counts.
const CategoryAll = "all"

type Category struct {
	ID    string
	Name  string
	Count int
}

type ProductsAPI interface {
	ListCategories(ctx context.Context) ([]api.CategoryRecord, error)
	ListProducts(ctx context.Context) ([]api.ProductRecord, error)
	ListProductsByCategory(ctx context.Context, category string) ([]api.ProductRecord, error)
}

type Loader struct {
	api ProductsAPI

	mu         sync.Mutex
	categories []Category
	products   []api.ProductRecord
	selected   string
	issued     uint64
}

func NewLoader(client ProductsAPI) *Loader {
	return &Loader{api: client, selected: CategoryAll}
}

// LoadCategories fetches the category list and prepends the "All
// Categories" aggregate. Category names double as IDs.
func (l *Loader) LoadCategories(ctx context.Context) error {
	recs, err := l.api.ListCategories(ctx)
	if err != nil {
		return err
	}

	cats := make([]Category, 0, len(recs)+1)
	total := 0
	for _, rec := range recs {
		total += rec.Count
		cats = append(cats, Category{ID: rec.Name, Name: rec.Name, Count: rec.Count})
	}
	all := Category{ID: CategoryAll, Name: "All Categories", Count: total}

	l.mu.Lock()
	l.categories = append([]Category{all}, cats...)
	l.mu.Unlock()
	return nil
}

// SelectCategory records the selection and re-fetches products for it. A
// response belonging to a superseded selection is dropped.
func (l *Loader) SelectCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		categoryID = CategoryAll
	}

	l.mu.Lock()
	l.selected = categoryID
	l.issued++
	seq := l.issued
	l.mu.Unlock()

	var (
		recs []api.ProductRecord
		err  error
	)
	if categoryID == CategoryAll {
		recs, err = l.api.ListProducts(ctx)
	} else {
		recs, err = l.api.ListProductsByCategory(ctx, categoryID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.issued {
		return nil
	}
	if err != nil {
		return err
	}
	l.products = recs
	return nil
}

func (l *Loader) Categories() []Category {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Category, len(l.categories))
	copy(out, l.categories)
	return out
}

func (l *Loader) Products() []api.ProductRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]api.ProductRecord, len(l.products))
	copy(out, l.products)
	return out
}

func (l *Loader) Selected() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selected
}

// Search is the pure client-side filter: case-insensitive substring match
// on the product name, no network effect.
func Search(items []api.ProductRecord, query string) []api.ProductRecord {
	query = strings.ToLower(query)
	if query == "" {
		return items
	}
	out := make([]api.ProductRecord, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.ProductName), query) {
			out = append(out, p)
		}
	}
	return out
}
