package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pages maps routes to the html templates rendered for them.
var Pages = map[string]string{
	"/":                 "index.html",
	"/diagnosis":        "diagnosis.html",
	"/care-guide":       "care_guide.html",
	"/history":          "history.html",
	"/plant-identifier": "plant_identifier.html",
}

func Page(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, template, nil)
	}
}
