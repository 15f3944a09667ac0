package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/neekunjchaturvedi/kisanfront/internal/http/render"
	"github.com/neekunjchaturvedi/kisanfront/internal/modules/products"
	"github.com/neekunjchaturvedi/kisanfront/pkg/view"
)

type ProductsHandler struct {
	loader *products.Loader
}

func NewProductsHandler(loader *products.Loader) *ProductsHandler {
	return &ProductsHandler{loader: loader}
}

// List renders the products page: category sidebar, the selected category's
// products and the client-side name search applied on top.
func (h *ProductsHandler) List(c *gin.Context) {
	selected := c.DefaultQuery("category", products.CategoryAll)
	query := strings.TrimSpace(c.Query("q"))

	var loadErr string
	if err := h.loader.LoadCategories(c.Request.Context()); err != nil {
		loadErr = "Failed to load categories"
	}
	if err := h.loader.SelectCategory(c.Request.Context(), selected); err != nil {
		loadErr = "Failed to load products"
	}

	cats := h.loader.Categories()
	catViews := make([]view.CategoryItem, 0, len(cats))
	for _, cat := range cats {
		catViews = append(catViews, view.CategoryItem{
			ID:       cat.ID,
			Name:     cat.Name,
			Count:    cat.Count,
			Selected: cat.ID == selected,
		})
	}

	matched := products.Search(h.loader.Products(), query)
	cards := make([]view.ProductCard, 0, len(matched))
	for _, p := range matched {
		card := view.ProductCard{
			ID:       p.ID,
			Name:     p.ProductName,
			Category: p.Category,
			Price:    view.Rupees(p.Price),
			Stock:    p.StockQuantity,
			Image:    p.Image1,
		}
		if !p.SalePrice.IsZero() {
			card.SalePrice = view.Rupees(p.SalePrice)
		}
		cards = append(cards, card)
	}

	render.Page(c, http.StatusOK, "products.tmpl", gin.H{
		"Page": view.ProductsPage{
			Categories: catViews,
			Products:   cards,
			Query:      query,
			Category:   selected,
			LoadError:  loadErr,
		},
	})
}
