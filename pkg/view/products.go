package view

type CategoryItem struct {
	ID       string
	Name     string
	Count    int
	Selected bool
}

type ProductCard struct {
	ID        string
	Name      string
	Category  string
	Price     string
	SalePrice string
	Stock     int
	Image     string
}

type ProductsPage struct {
	Categories []CategoryItem
	Products   []ProductCard
	Query      string
	Category   string
	LoadError  string
}

// AddProductForm echoes submitted values back into the form on validation
// failure.
type AddProductForm struct {
	ProductName   string
	Description   string
	ProductType   string
	Category      string
	Price         string
	SalePrice     string
	SKU           string
	StockQuantity string
	Tags          string
	ImageURLs     [4]string
}

type AddProductPage struct {
	Form       AddProductForm
	Categories []string
	Errors     map[string]string
	FormError  string
}
