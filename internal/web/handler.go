package web

import (
	"cmp"
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nikolayk812/eshop/internal/platform/cqrs"
	"github.com/nikolayk812/eshop/internal/web/client"
	"go.uber.org/zap"
)

const (
	featuredProducts = 10
	// the catalog API caps a page at this size
	allProducts  = 100
	defaultColor = "Black"
)

var colors = []string{"Black", "White", "Red", "Blue"}

type handler struct {
	catalog  CatalogService
	basket   BasketService
	ordering OrderingService
	opts     Options
	log      *zap.Logger
}

type addToCartForm struct {
	ProductID string `form:"productId" binding:"required,uuid"`
	Quantity  int    `form:"quantity"`
	Color     string `form:"color"`
}

type removeFromCartForm struct {
	ProductID string `form:"productId" binding:"required,uuid"`
}

type checkoutForm struct {
	FirstName    string `form:"firstName" binding:"required"`
	LastName     string `form:"lastName" binding:"required"`
	EmailAddress string `form:"emailAddress" binding:"required,email"`
	AddressLine  string `form:"addressLine" binding:"required"`
	Country      string `form:"country" binding:"required"`
	State        string `form:"state"`
	ZipCode      string `form:"zipCode" binding:"required"`

	CardName      string `form:"cardName" binding:"required"`
	CardNumber    string `form:"cardNumber" binding:"required"`
	Expiration    string `form:"expiration" binding:"required"`
	CVV           string `form:"cvv" binding:"required,max=3"`
	PaymentMethod int    `form:"paymentMethod"`
}

func (h *handler) index(c *gin.Context) {
	products, err := h.catalog.GetProducts(c.Request.Context(), 1, featuredProducts)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{"Products": products})
}

func (h *handler) products(c *gin.Context) {
	ctx := c.Request.Context()

	all, err := h.catalog.GetProducts(ctx, 1, allProducts)
	if err != nil {
		h.fail(c, err)
		return
	}

	selected := c.Query("category")
	products := all
	if selected != "" {
		products, err = h.catalog.GetProductsByCategory(ctx, selected)
		if err != nil {
			h.fail(c, err)
			return
		}
	}

	c.HTML(http.StatusOK, "products", gin.H{
		"Products":         products,
		"Categories":       categoriesOf(all),
		"SelectedCategory": selected,
	})
}

func (h *handler) product(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.renderError(c, http.StatusNotFound, "Product not found", "There is no product "+c.Param("id")+".")
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "product", gin.H{"Product": product, "Colors": colors})
}

func (h *handler) cart(c *gin.Context) {
	cart, err := h.basket.LoadUserBasket(c.Request.Context(), h.opts.UserName)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "cart", gin.H{"Cart": cart})
}

// addToCart adds a catalog product to the shopper's basket. Name and price
// are taken from the catalog, not from the form.
func (h *handler) addToCart(c *gin.Context) {
	var form addToCartForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid request", "A valid productId is required.")
		return
	}

	ctx := c.Request.Context()

	product, err := h.catalog.GetProduct(ctx, uuid.MustParse(form.ProductID))
	if err != nil {
		h.fail(c, err)
		return
	}

	cart, err := h.basket.LoadUserBasket(ctx, h.opts.UserName)
	if err != nil {
		h.fail(c, err)
		return
	}

	cart.Add(client.CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    max(form.Quantity, 1),
		Color:       cmp.Or(form.Color, defaultColor),
	})

	if err := h.basket.StoreBasket(ctx, cart); err != nil {
		h.fail(c, err)
		return
	}

	h.log.Info("product added to cart",
		zap.String("userName", h.opts.UserName),
		zap.Stringer("productId", product.ID))

	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *handler) removeFromCart(c *gin.Context) {
	var form removeFromCartForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid request", "A valid productId is required.")
		return
	}

	ctx := c.Request.Context()

	cart, err := h.basket.LoadUserBasket(ctx, h.opts.UserName)
	if err != nil {
		h.fail(c, err)
		return
	}

	cart.Remove(uuid.MustParse(form.ProductID))

	if err := h.basket.StoreBasket(ctx, cart); err != nil {
		h.fail(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *handler) checkout(c *gin.Context) {
	cart, err := h.basket.LoadUserBasket(c.Request.Context(), h.opts.UserName)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "checkout", gin.H{"Cart": cart, "Form": checkoutForm{}})
}

func (h *handler) submitCheckout(c *gin.Context) {
	ctx := c.Request.Context()

	cart, err := h.basket.LoadUserBasket(ctx, h.opts.UserName)
	if err != nil {
		h.fail(c, err)
		return
	}

	var form checkoutForm
	if err := c.ShouldBind(&form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			h.renderError(c, http.StatusBadRequest, "Invalid request", "The checkout form could not be read.")
			return
		}
		form.CardNumber, form.CVV = "", ""
		c.HTML(http.StatusBadRequest, "checkout", gin.H{
			"Cart":   cart,
			"Form":   form,
			"Errors": cqrs.FieldErrors(verrs),
		})
		return
	}

	if len(cart.Items) == 0 {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	h.log.Info("checkout submitted", zap.String("userName", cart.UserName))

	err = h.basket.CheckoutBasket(ctx, client.BasketCheckout{
		UserName:      cart.UserName,
		CustomerID:    h.opts.CustomerID,
		TotalPrice:    cart.TotalPrice(),
		FirstName:     form.FirstName,
		LastName:      form.LastName,
		EmailAddress:  form.EmailAddress,
		AddressLine:   form.AddressLine,
		Country:       form.Country,
		State:         form.State,
		ZipCode:       form.ZipCode,
		CardName:      form.CardName,
		CardNumber:    form.CardNumber,
		Expiration:    form.Expiration,
		CVV:           form.CVV,
		PaymentMethod: form.PaymentMethod,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/confirmation")
}

func (h *handler) confirmation(c *gin.Context) {
	c.HTML(http.StatusOK, "confirmation", gin.H{"Message": "Your order has been submitted."})
}

func (h *handler) orders(c *gin.Context) {
	orders, err := h.ordering.GetOrdersByCustomer(c.Request.Context(), h.opts.CustomerID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "orders", gin.H{"Orders": orders})
}

// fail renders an upstream failure. A 404 from an API becomes a 404 page,
// anything else a 502.
func (h *handler) fail(c *gin.Context, err error) {
	if errors.Is(err, client.ErrNotFound) {
		h.renderError(c, http.StatusNotFound, "Not found", "We could not find what you were looking for.")
		return
	}

	h.log.Error("storefront request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	h.renderError(c, http.StatusBadGateway, "Something went wrong", "Please try again later.")
}

func (h *handler) renderError(c *gin.Context, status int, title, message string) {
	c.HTML(status, "error", gin.H{"Title": title, "Message": message})
	c.Abort()
}

func categoriesOf(products []client.Product) []string {
	var out []string
	for _, p := range products {
		for _, category := range p.Category {
			if !slices.Contains(out, category) {
				out = append(out, category)
			}
		}
	}
	slices.Sort(out)
	return out
}
