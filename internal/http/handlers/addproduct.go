package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/neekunjchaturvedi/kisanfront/internal/api"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/flash"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/render"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/validation"
	"github.com/neekunjchaturvedi/kisanfront/internal/shared/apperr"
	"github.com/neekunjchaturvedi/kisanfront/internal/shared/sku"
	"github.com/neekunjchaturvedi/kisanfront/internal/storage"
	"github.com/neekunjchaturvedi/kisanfront/pkg/view"
)

// Categories offered in the add-product form select.
var productCategories = []string{
	"Seeds", "Fertilizers", "Pesticides", "Tools", "Irrigation", "Organic",
}

const maxUploadBytes = 5 << 20

type AddProductHandler struct {
	api     *api.Client
	uploads storage.Storage
	flash   *flash.Codec
}

func NewAddProductHandler(client *api.Client, uploads storage.Storage, flashCodec *flash.Codec) *AddProductHandler {
	return &AddProductHandler{api: client, uploads: uploads, flash: flashCodec}
}

func (h *AddProductHandler) Get(c *gin.Context) {
	render.Page(c, http.StatusOK, "addproduct.tmpl", gin.H{
		"Page": view.AddProductPage{Categories: productCategories},
	})
}

type addProductInput struct {
	ProductName   string `form:"product_name" binding:"required"`
	Description   string `form:"description" binding:"required"`
	ProductType   string `form:"product_type" binding:"required"`
	Category      string `form:"category"`
	Price         string `form:"price" binding:"required"`
	SalePrice     string `form:"sale_price"`
	SKU           string `form:"sku"`
	StockQuantity int    `form:"stock_quantity" binding:"gte=0"`
	Sales         int    `form:"sales"`
	Remaining     int    `form:"remaining"`
	Tags          string `form:"tags"`
	Image1        string `form:"image1" binding:"required"`
	Image2        string `form:"image2"`
	Image3        string `form:"image3"`
	Image4        string `form:"image4"`
}

// Post validates the form locally, then sends the product to the API.
// Validation failures never reach the network; server rejections come back
// as a page-level message.
func (h *AddProductHandler) Post(c *gin.Context) {
	var in addProductInput
	errs := validation.FieldErrors{}
	if err := c.ShouldBind(&in); err != nil {
		errs = validation.FromBindError(err, &in)
	}

	price, perr := decimal.NewFromString(strings.TrimSpace(in.Price))
	if in.Price != "" && (perr != nil || price.IsNegative()) {
		errs["price"] = "Price must be a valid number"
	}
	salePrice := decimal.Zero
	if s := strings.TrimSpace(in.SalePrice); s != "" {
		var err error
		if salePrice, err = decimal.NewFromString(s); err != nil || salePrice.IsNegative() {
			errs["sale_price"] = "Sale price must be a valid number"
		}
	}

	if len(errs) > 0 {
		render.Page(c, http.StatusBadRequest, "addproduct.tmpl", gin.H{
			"Page": view.AddProductPage{
				Form:       formFromInput(in),
				Categories: productCategories,
				Errors:     errs,
			},
		})
		return
	}

	productSKU := strings.TrimSpace(in.SKU)
	if productSKU == "" {
		productSKU = sku.FromName(in.ProductName)
	}

	var tags []string
	for _, t := range strings.Split(in.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	_, err := h.api.AddProduct(c.Request.Context(), api.ProductInput{
		Image1:        in.Image1,
		Image2:        in.Image2,
		Image3:        in.Image3,
		Image4:        in.Image4,
		ProductName:   strings.TrimSpace(in.ProductName),
		Description:   strings.TrimSpace(in.Description),
		ProductType:   strings.TrimSpace(in.ProductType),
		Category:      strings.TrimSpace(in.Category),
		Price:         price,
		SalePrice:     salePrice,
		SKU:           productSKU,
		StockQuantity: in.StockQuantity,
		Sales:         in.Sales,
		Remaining:     in.Remaining,
		Tags:          tags,
	})
	if err != nil {
		render.Page(c, apperr.HTTPStatus(err), "addproduct.tmpl", gin.H{
			"Page": view.AddProductPage{
				Form:       formFromInput(in),
				Categories: productCategories,
				FormError:  apperr.PublicMessage(err),
			},
		})
		return
	}

	// redirect resets the form
	render.RedirectWithFlash(c, h.flash, "/products/addproduct", view.FlashSuccess, "Product added successfully!")
}

// UploadImage receives one file from an image slot, downscales oversized
// photos and stores it through the configured driver. Always answers JSON;
// the form's image widget reads success/result.url.
func (h *AddProductHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file supplied."})
		return
	}
	if fh.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image must be 5 MB or smaller."})
		return
	}

	contentType := fh.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "image/webp", "image/gif":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unsupported image type."})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not read upload."})
		return
	}
	defer f.Close()

	body, size, err := storage.Downscale(f, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not process image."})
		return
	}

	res, err := h.uploads.Put(c.Request.Context(), body, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        size,
	})
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "message": apperr.PublicMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"url": res.URL}})
}

func formFromInput(in addProductInput) view.AddProductForm {
	return view.AddProductForm{
		ProductName:   in.ProductName,
		Description:   in.Description,
		ProductType:   in.ProductType,
		Category:      in.Category,
		Price:         in.Price,
		SalePrice:     in.SalePrice,
		SKU:           in.SKU,
		StockQuantity: intToString(in.StockQuantity),
		Tags:          in.Tags,
		ImageURLs:     [4]string{in.Image1, in.Image2, in.Image3, in.Image4},
	}
}
