package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrmeowless/PartnerKitHelper/store"
)

// NewRouter builds the redirect router. The bot hands out links of the
// form <hostname>/r/<offerID>?u=<tgID>; resolving one records the click
// and bounces the visitor to the offer with tracking attached.
func NewRouter(resolver *store.RedirectResolver) *gin.Engine {
	router := gin.Default()

	router.GET("/r/:offerId", func(c *gin.Context) {
		target, err := resolver.Resolve(c.Param("offerId"), c.Query("u"))
		if errors.Is(err, store.ErrOfferNotFound) {
			c.String(http.StatusNotFound, "Offer not found")
			return
		}
		if err != nil {
			log.Printf("redirect error: %v", err)
			c.String(http.StatusInternalServerError, "Internal error")
			return
		}
		c.Redirect(http.StatusFound, target)
	})

	return router
}
