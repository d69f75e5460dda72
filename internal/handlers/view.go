package handlers

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NowSalonApp/now-salon-web/internal/backend"
	"github.com/NowSalonApp/now-salon-web/internal/listfilter"
)

func postForm(c *gin.Context) url.Values {
	_ = c.Request.ParseForm()
	return c.Request.PostForm
}

// filterQuery collects the (value, option) pair from the list pages'
// filter form; incomplete pairs deactivate the filter.
func filterQuery(c *gin.Context) listfilter.Query {
	return listfilter.Query{
		Value:  c.Query("filterValue"),
		Option: c.Query("filterOption"),
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func queryEscape(s string) string {
	return url.QueryEscape(s)
}

// mutationError keeps the fixed Portuguese message for backend
// rejections and appends the raw error text on transport failures.
func mutationError(prefix string, err error) string {
	if _, ok := err.(*backend.StatusError); ok {
		return prefix
	}
	return prefix + ": " + err.Error()
}
