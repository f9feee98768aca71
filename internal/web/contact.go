package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/store"
)

type contactForm struct {
	Name    string `form:"fullName" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email,max=320"`
	Message string `form:"message" binding:"required,max=5000"`
}

const (
	contactInvalid = "Please fill in your name, a valid email address and a message."
	contactFailed  = "Sorry, there was an error sending your message. Please try again later."
	contactSent    = "Thank you for your message! I'll get back to you soon."
)

// handleContact stores the submission and forwards it by mail when SMTP is
// configured. The visitor sees success if either step worked. Fragments are
// returned with 200 so HTMX swaps them in.
func (s *Server) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error", gin.H{"error": contactInvalid})
		return
	}

	ctx := c.Request.Context()
	id, saveErr := s.db.SaveMessage(ctx, store.Message{
		Name:  form.Name,
		Email: form.Email,
		Body:  form.Message,
	})
	if saveErr != nil {
		s.log.Error("error saving contact message", zap.Error(saveErr))
	}

	sendErr := s.mailer.Send(ctx, mail.Contact{Name: form.Name, Email: form.Email, Message: form.Message})
	switch {
	case sendErr == nil:
		s.log.Info("contact message sent", zap.Int64("id", id))
		if saveErr == nil {
			if err := s.db.MarkDelivered(ctx, id); err != nil {
				s.log.Warn("error marking message delivered", zap.Error(err))
			}
		}
	case errors.Is(sendErr, mail.ErrNotConfigured):
		s.log.Debug("smtp not configured; message stored only", zap.Int64("id", id))
	default:
		s.log.Error("error sending contact email", zap.Error(sendErr))
	}

	if saveErr != nil && sendErr != nil {
		c.HTML(http.StatusOK, "contact-error", gin.H{"error": contactFailed})
		return
	}
	c.HTML(http.StatusOK, "contact-success", gin.H{"success": contactSent})
}
