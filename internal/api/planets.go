package api

import (
	"errors"                        // Error matching
	"net/http"                      // HTTP status codes
	"planetary_api/internal/schema" // Wire shapes
	"planetary_api/internal/store"  // Data access layer
	"planetary_api/internal/utils"  // Cache helpers
	"strconv"                       // String conversion

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

const planetListKey = "planets:all" // Cache key for the planet list

// planetKey is the cache key of a single planet
func planetKey(id uint) string {
	return "planet:" + strconv.FormatUint(uint64(id), 10)
}

// ListPlanetsHandler returns every planet
func ListPlanetsHandler(planets store.PlanetStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var out []schema.Planet
		if found, err := cache.Get(ctx, planetListKey, &out); err != nil {
			logrus.WithError(err).Warn("Failed to read cached planet list")
		} else if found {
			c.JSON(http.StatusOK, gin.H{"planets": out}) // Served from cache
			return
		}
		records, err := planets.ListPlanets(ctx)
		if err != nil {
			logrus.WithError(err).Error("Failed to list planets")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch planets"})
			return
		}
		out = schema.PlanetsFromRecords(records)
		if err := cache.Set(ctx, planetListKey, out); err != nil {
			logrus.WithError(err).Warn("Failed to cache planet list")
		}
		c.JSON(http.StatusOK, gin.H{"planets": out})
	}
}

// PlanetDetailsHandler returns one planet by id
func PlanetDetailsHandler(planets store.PlanetStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := strconv.ParseUint(c.Param("planet_id"), 10, 64)
		if err != nil {
			// A non numeric id can never match a row
			c.JSON(http.StatusNotFound, gin.H{"message": "That planet does not exist."})
			return
		}
		key := planetKey(uint(id))
		var out schema.Planet
		if found, err := cache.Get(ctx, key, &out); err != nil {
			logrus.WithFields(logrus.Fields{
				"planet_id": id,          // Requested planet
				"error":     err.Error(), // Error message
			}).Warn("Failed to read cached planet")
		} else if found {
			c.JSON(http.StatusOK, out) // Served from cache
			return
		}
		record, err := planets.FindPlanet(ctx, uint(id))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "That planet does not exist."})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"planet_id": id,          // Requested planet
				"error":     err.Error(), // Error message
			}).Error("Failed to fetch planet")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch planet"})
			return
		}
		out = schema.PlanetFromRecord(*record)
		if err := cache.Set(ctx, key, out); err != nil {
			logrus.WithError(err).Warn("Failed to cache planet")
		}
		c.JSON(http.StatusOK, out)
	}
}

// AddPlanetHandler creates a planet; the unique name index signals duplicates
func AddPlanetHandler(planets store.PlanetStore, cache *utils.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schema.PlanetInput // Bind JSON or form body
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
			return
		}
		planet := req.Record()
		err := planets.CreatePlanet(c.Request.Context(), &planet)
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"message": "There is already a planet by that name."})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"planet_name": req.PlanetName, // Requested name
				"error":       err.Error(),    // Error message
			}).Error("Failed to add planet")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add planet"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"planet_id":   planet.PlanetID,   // Assigned id
			"planet_name": planet.PlanetName, // Planet name
		}).Info("Planet added")
		// Invalidate the list; the new id has never been cached
		if err := cache.Delete(c.Request.Context(), planetListKey); err != nil {
			logrus.WithError(err).Warn("Failed to invalidate planet list cache")
		}
		c.JSON(http.StatusCreated, gin.H{"Message": "Planet added!"})
	}
}
