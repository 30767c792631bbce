package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/db"
	"golang.org/x/crypto/bcrypt"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an administrator and starts a session.
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "username and password are required") {
		return
	}

	var user db.User
	if err := a.db.Where("username = ?", payload.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": user.Username})
}

// Logout clears the session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me reports the logged-in administrator.
func (a *API) Me(c *gin.Context) {
	session := sessions.Default(c)
	username, _ := session.Get("username").(string)
	c.JSON(http.StatusOK, gin.H{"username": username})
}

// Dashboard returns row counts for the admin landing page.
func (a *API) Dashboard(c *gin.Context) {
	counts := gin.H{}
	for name, model := range map[string]interface{}{
		"submissions":  &db.ContactSubmission{},
		"events":       &db.Event{},
		"faqs":         &db.Faq{},
		"founders":     &db.Founder{},
		"volunteers":   &db.Volunteer{},
		"gallery":      &db.GalleryImage{},
		"services":     &db.ServiceItem{},
		"testimonials": &db.Testimonial{},
		"quotes":       &db.Quote{},
		"banners":      &db.BannerSlide{},
		"posts":        &db.Post{},
	} {
		var count int64
		if err := a.db.Model(model).Count(&count).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "failed to load dashboard")
			return
		}
		counts[name] = count
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}

// AuthRequired guards the admin API with the cookie session.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}
