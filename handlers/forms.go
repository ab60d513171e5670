package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ebelene1994/Presto-Pizza/catalog"
	"github.com/Ebelene1994/Presto-Pizza/client"
	"github.com/Ebelene1994/Presto-Pizza/models"
)

// FormsHandler relays the marketing forms. Field validation happens at the
// binding; whatever passes is forwarded verbatim.
type FormsHandler struct {
	relay *client.FormRelayClient
}

func NewFormsHandler(relay *client.FormRelayClient) *FormsHandler {
	return &FormsHandler{relay: relay}
}

func (h *FormsHandler) Contact(c *gin.Context) {
	var form models.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	h.submit(c, map[string]string{
		"subject": "Contact: " + form.Subject,
		"name":    form.Name,
		"email":   form.Email,
		"message": form.Message,
	}, "Thanks for reaching out! We'll get back to you soon.")
}

func (h *FormsHandler) Newsletter(c *gin.Context) {
	var form models.NewsletterForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	h.submit(c, map[string]string{
		"subject": "Newsletter Subscription",
		"email":   form.Email,
	}, "You're on the list!")
}

func (h *FormsHandler) Catering(c *gin.Context) {
	var form models.CateringForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	h.submit(c, map[string]string{
		"subject": "Catering Request",
		"name":    form.Name,
		"phone":   form.Phone,
		"email":   form.Email,
		"date":    form.Date,
		"guests":  strconv.Itoa(form.Guests),
		"package": form.Package,
		"message": form.Message,
	}, "Catering request sent! Our events team will call you.")
}

func (h *FormsHandler) Franchise(c *gin.Context) {
	var form models.FranchiseForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	h.submit(c, map[string]string{
		"subject":    "Franchise Inquiry",
		"name":       form.Name,
		"email":      form.Email,
		"phone":      form.Phone,
		"capital":    form.Capital,
		"location":   form.Location,
		"experience": form.Experience,
	}, "Inquiry received! Our franchise team will be in touch.")
}

func (h *FormsHandler) JobApplication(c *gin.Context) {
	var form models.JobApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	job, ok := catalog.JobByID(form.PositionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Position not found: " + form.PositionID})
		return
	}

	h.submit(c, map[string]string{
		"subject":    fmt.Sprintf("Job Application: %s", job.Title),
		"name":       form.Name,
		"email":      form.Email,
		"phone":      form.Phone,
		"resume_url": form.ResumeURL,
	}, fmt.Sprintf("Application for %s sent. Good luck!", job.Title))
}

// submit relays the fields once; any failure is surfaced with a retry prompt
// and left to the user to resubmit.
func (h *FormsHandler) submit(c *gin.Context, fields map[string]string, thanks string) {
	resp, err := h.relay.Submit(c.Request.Context(), fields)
	if err != nil {
		if errors.Is(err, client.ErrRelayUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send your message. Please try again."})
			return
		}
		log.Printf("Form relay error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send your message. Please try again."})
		return
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "Submission rejected by the form relay."
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": thanks})
}
