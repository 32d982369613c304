// Package flash carries one-shot notification messages across a redirect in
// a cookie. Messages written during one request are read and discarded by
// the next page render.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const cookieName = "blog_flash"

const (
	LevelSuccess = "success"
	LevelError   = "error"
)

type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

func Success(c *gin.Context, text string) {
	add(c, Message{Level: LevelSuccess, Text: text})
}

func Error(c *gin.Context, text string) {
	add(c, Message{Level: LevelError, Text: text})
}

// Take returns all pending messages and clears the cookie.
func Take(c *gin.Context) []Message {
	messages := read(c)
	if len(messages) > 0 {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
	}
	return messages
}

func add(c *gin.Context, message Message) {
	messages := append(read(c), message)
	write(c, messages)
}

func read(c *gin.Context) []Message {
	raw, err := c.Cookie(cookieName)
	if err != nil {
		return nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}

	var messages []Message
	if err := json.Unmarshal(decoded, &messages); err != nil {
		return nil
	}
	return messages
}

func write(c *gin.Context, messages []Message) {
	encoded, err := json.Marshal(messages)
	if err != nil {
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, base64.RawURLEncoding.EncodeToString(encoded), 300, "/", "", false, true)
}
