package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// newEngine builds the gin engine with the shared middleware chain. main and
// the tests both go through here so they exercise the same stack.
func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).Error("handler panicked")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}))
	r.Use(cors.Default())
	setupRoutes(r)
	return r
}

func setupRoutes(r *gin.Engine) {
	r.GET("/", rootHandler)
	r.GET("/health", healthHandler)

	api := r.Group("/api")
	api.POST("/auth/register", registerHandler)
	api.POST("/auth/login", loginHandler)
	api.GET("/users/all", listUsersHandler)
	api.GET("/profile/:userId", getProfileHandler)
	api.PUT("/profile/update", updateProfileHandler)
	api.POST("/ecg/save", saveEcgHandler)
	api.GET("/ecg/history/:userId", historyHandler)
	api.DELETE("/ecg/history/:userId", deleteHistoryHandler)
	api.DELETE("/ecg/history/:userId/:id", deleteRecordHandler)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Endpoint not found",
			"path":    c.Request.URL.Path,
		})
	})
}

// requestLogger logs a line per completed request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Info("request")
	}
}

func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "ECG tracking API is running"})
}

// healthHandler answers even when the store is down or was never configured.
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"uptime":   time.Since(startTime).Round(time.Second).String(),
		"database": databaseHealth(),
	})
}

// paramUint parses a numeric path parameter.
func paramUint(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, &ValidationError{Msg: name + " must be an integer"}
	}
	return uint(v), nil
}

func registerHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Age      int    `json:"age"`
		Gender   string `json:"gender"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, &ValidationError{Msg: "invalid request body"})
		return
	}
	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()
	user, err := RegisterUser(ctx, req.Username, req.Password, req.Age, req.Gender)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user.Public()})
}

func loginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, &ValidationError{Msg: "invalid request body"})
		return
	}
	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()
	user, err := Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": issueToken(user), "user": user.Public()})
}

// listUsersHandler returns every user including the stored password field.
// Documented legacy behavior of the mobile contract, preserved as-is.
func listUsersHandler(c *gin.Context) {
	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()
	users, err := ListUsers(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users, "count": len(users)})
}

func getProfileHandler(c *gin.Context) {
	userID, err := paramUint(c, "userId")
	if err != nil {
		respondError(c, err)
		return
	}
	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()
	user, err := GetProfile(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}

func updateProfileHandler(c *gin.Context) {
	var req struct {
		UserID      uint   `json:"userId"`
		Username    string `json:"username"`
		Age         int    `json:"age"`
		Gender      string `json:"gender"`
		Password    string `json:"password"`
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, &ValidationError{Msg: "invalid request body"})
		return
	}
	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()
	user, err := UpdateProfile(ctx, req.UserID, req.Username, req.Age, req.Gender, req.Password, req.OldPassword, req.NewPassword)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}

func saveEcgHandler(c *gin.Context) {
	var req struct {
		UserID   uint   `json:"userId"`
		Username string `json:"username"`
		Bpm      int    `json:"bpm"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, &ValidationError{Msg: "invalid request body"})
		return
	}
	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()
	result, err := SaveResult(ctx, req.UserID, req.Username, req.Bpm)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": result})
}

func historyHandler(c *gin.Context) {
	userID, err := paramUint(c, "userId")
	if err != nil {
		respondError(c, err)
		return
	}
	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()
	history, err := History(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "history": history, "count": len(history)})
}

func deleteHistoryHandler(c *gin.Context) {
	userID, err := paramUint(c, "userId")
	if err != nil {
		respondError(c, err)
		return
	}
	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()
	deleted, previous, err := PurgeHistory(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deletedCount": deleted, "previousCount": previous})
}

func deleteRecordHandler(c *gin.Context) {
	userID, err := paramUint(c, "userId")
	if err != nil {
		respondError(c, err)
		return
	}
	id, err := paramUint(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()
	deletedID, err := DeleteRecord(ctx, userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deletedRecordId": deletedID})
}
