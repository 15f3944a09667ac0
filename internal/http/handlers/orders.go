package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/neekunjchaturvedi/kisanfront/internal/http/flash"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/middleware"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/render"
	"github.com/neekunjchaturvedi/kisanfront/internal/http/validation"
	"github.com/neekunjchaturvedi/kisanfront/internal/modules/orders"
	"github.com/neekunjchaturvedi/kisanfront/internal/shared/apperr"
	"github.com/neekunjchaturvedi/kisanfront/pkg/view"
)

const queryDateFormat = "2006-01-02"

type OrdersHandler struct {
	sync  *orders.Synchronizer
	flash *flash.Codec
}

func NewOrdersHandler(sync *orders.Synchronizer, flashCodec *flash.Codec) *OrdersHandler {
	return &OrdersHandler{sync: sync, flash: flashCodec}
}

// List renders the orders page: tabs with badge counts over the whole
// collection and the filtered table below. The collection is re-fetched on
// every page view; a fetch failure keeps whatever was loaded before and
// shows the retry banner.
func (h *OrdersHandler) List(c *gin.Context) {
	_ = h.sync.Refresh(c.Request.Context())

	filters, from, to := parseFilters(c)
	all := h.sync.Orders()
	visible := orders.Visible(all, filters)
	counts := orders.Counts(all)

	activeTab := "all"
	if filters.Status != "" {
		activeTab = filters.Status
	}

	rows := make([]view.OrderRow, 0, len(visible))
	for _, o := range visible {
		rows = append(rows, view.OrderRow{
			ID:           o.ID,
			OrderID:      o.OrderID,
			Product:      o.Product,
			Date:         o.Date,
			CustomerName: o.CustomerName,
			Status:       o.Status,
			Amount:       view.Rupees(o.Amount),
			Cancellable:  o.Status != orders.StatusCancelled,
		})
	}

	render.Page(c, http.StatusOK, "orders.tmpl", gin.H{
		"Page": view.OrdersPage{
			Rows:      rows,
			Counts:    statusCountsView(counts),
			ActiveTab: activeTab,
			Status:    filters.Status,
			From:      from.Format(queryDateFormat),
			To:        to.Format(queryDateFormat),
			Total:     counts.All,
			LoadError: h.sync.LoadError(),
		},
	})
}

// Refresh is the user-initiated re-fetch. Unlike the page-load fetch it
// always reports the outcome as a toast.
func (h *OrdersHandler) Refresh(c *gin.Context) {
	if err := h.sync.Refresh(c.Request.Context()); err != nil {
		render.RedirectWithFlash(c, h.flash, ordersReturnTo(c), view.FlashError, "Failed to refresh orders")
		return
	}
	render.RedirectWithFlash(c, h.flash, ordersReturnTo(c), view.FlashSuccess, "Orders refreshed successfully")
}

func (h *OrdersHandler) Detail(c *gin.Context) {
	id := c.Param("id")
	o, ok := h.sync.Get(id)
	if !ok {
		// direct link before any list view; load once and retry
		_ = h.sync.Refresh(c.Request.Context())
		if o, ok = h.sync.Get(id); !ok {
			middleware.Fail(c, apperr.NotFoundErr("Order not found."))
			return
		}
	}
	render.Page(c, http.StatusOK, "order_detail.tmpl", gin.H{
		"Page": orderDetailView(o),
	})
}

type statusUpdateInput struct {
	Status string `form:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
	Note   string `form:"note"`
}

func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var in statusUpdateInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Invalid status update.", errs))
		return
	}

	o, changed, err := h.sync.UpdateStatus(c.Request.Context(), id, in.Status, in.Note)
	if err != nil {
		render.RedirectWithFlash(c, h.flash, "/orders/"+id, view.FlashError, apperr.PublicMessage(err))
		return
	}
	if !changed {
		// same status and no note: nothing was sent
		c.Redirect(http.StatusFound, "/orders/"+id)
		return
	}
	render.RedirectWithFlash(c, h.flash, "/orders/"+id, view.FlashSuccess, "Order "+o.OrderID+" updated successfully.")
}

func (h *OrdersHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	o, err := h.sync.Cancel(c.Request.Context(), id)
	if err != nil {
		render.RedirectWithFlash(c, h.flash, ordersReturnTo(c), view.FlashError, "Failed to cancel order. Please try again.")
		return
	}
	render.RedirectWithFlash(c, h.flash, ordersReturnTo(c), view.FlashSuccess, "Order "+o.OrderID+" has been cancelled successfully.")
}

// parseFilters builds the filter options from the query string, defaulting
// to the current calendar month. "all" and empty both mean no status
// filter. Malformed or inverted dates are passed through unvalidated; an
// inverted range just matches nothing.
func parseFilters(c *gin.Context) (orders.FilterOptions, time.Time, time.Time) {
	def := orders.CurrentMonthRange(time.Now())
	from, to := def.From, def.To

	if s := strings.TrimSpace(c.Query("from")); s != "" {
		if t, err := time.ParseInLocation(queryDateFormat, s, time.Local); err == nil {
			from = t
		}
	}
	if s := strings.TrimSpace(c.Query("to")); s != "" {
		if t, err := time.ParseInLocation(queryDateFormat, s, time.Local); err == nil {
			to = t
		}
	}

	status := strings.ToLower(strings.TrimSpace(c.Query("status")))
	if status == "all" {
		status = ""
	}

	return orders.FilterOptions{
		DateRange: orders.DateRange{From: from, To: to},
		Status:    status,
	}, from, to
}

func ordersReturnTo(c *gin.Context) string {
	if ret := c.PostForm("return_to"); strings.HasPrefix(ret, "/orders") {
		return ret
	}
	return "/orders"
}

func statusCountsView(c orders.StatusCounts) view.StatusCounts {
	return view.StatusCounts{
		All:        c.All,
		Pending:    c.Pending,
		Processing: c.Processing,
		Shipped:    c.Shipped,
		Delivered:  c.Delivered,
		Cancelled:  c.Cancelled,
	}
}

func orderDetailView(o orders.Order) view.OrderDetail {
	d := view.OrderDetail{
		ID:           o.ID,
		OrderID:      o.OrderID,
		Status:       o.Status,
		Date:         o.Date,
		CustomerName: o.CustomerName,
		Notes:        o.Full.Notes,
		Total:        view.Rupees(o.Amount),
	}
	if sa := o.Full.ShippingAddress; sa != nil {
		d.Phone = sa.Phone
		parts := make([]string, 0, 4)
		for _, p := range []string{sa.Address, sa.City, sa.State, sa.Pincode} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		d.Address = strings.Join(parts, ", ")
	}
	for _, it := range o.Full.Items {
		d.Items = append(d.Items, view.OrderDetailItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       view.Rupees(it.Price),
			LineTotal:   view.Rupees(it.Price.Mul(decimalFromInt(it.Quantity))),
		})
	}
	return d
}
