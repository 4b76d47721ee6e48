package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studydesk/dashboard/internal/model"
)

// pageRequest reads page, pageSize and search. Unparseable numbers fall back
// to the defaults applied by Normalize.
func pageRequest(c *gin.Context) model.PageRequest {
	return model.PageRequest{
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "pageSize"),
		Search:   strings.TrimSpace(c.Query("search")),
	}.Normalize()
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return 0
	}
	return n
}
