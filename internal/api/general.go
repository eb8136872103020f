package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Age parsing

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdultAge is the youngest age let through the age gate
const AdultAge = 18

// HelloHandler answers the health probe with plain text
func HelloHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World")
	}
}

// DataHandler returns a fixed sample payload
func DataHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "This is no data..."})
	}
}

// NotFoundHandler always answers 404 with an empty body
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	}
}

// QueryParamsHandler applies the age gate to ?name=&age=
func QueryParamsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ageGate(c, c.Query("name"), c.Query("age"))
	}
}

// PathParamsHandler applies the age gate to /params/:name/:age
func PathParamsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ageGate(c, c.Param("name"), c.Param("age"))
	}
}

// ageGate rejects callers younger than AdultAge with 401
func ageGate(c *gin.Context, name, rawAge string) {
	age, err := strconv.Atoi(rawAge)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "age must be an integer"})
		return
	}
	if age < AdultAge {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Sorry " + name + ", you are not old enough."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Welcome " + name + ", you are old enough."})
}
