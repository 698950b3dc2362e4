package server

import (
	"bytes"
	"errors"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"media-server/report"
)

const defaultHistoryLimit = 20

func (s *Server) handleListing(name string) fiber.Handler {
	listing := s.listings[name]
	return func(c *fiber.Ctx) error {
		files, err := listing.List()
		if err != nil {
			log.Printf("Error reading listing %s: %v", listing, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(files)
	}
}

func (s *Server) handleMedia(c *fiber.Ctx) error {
	name := c.Params("filename")

	fullPath, err := s.library.Resolve(name)
	if err != nil {
		log.Printf("Media request rejected: %q", name)
		return fileNotFound(c)
	}

	// Content type, ranges and conditional requests come from SendFile.
	// SendFile parses its argument as a URI, so '?' and '#' must be escaped.
	if err := c.SendFile((&url.URL{Path: fullPath}).EscapedPath()); err != nil {
		var e *fiber.Error
		if errors.As(err, &e) && e.Code == fiber.StatusNotFound {
			return fileNotFound(c)
		}
		return err
	}
	return nil
}

func fileNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "File not found",
	})
}

func (s *Server) handleDataSize(c *fiber.Ctx) error {
	r, err := s.reports.Build(c.UserContext())
	if err != nil {
		return err
	}

	if s.history != nil {
		if _, err := s.history.Append(r); err != nil {
			log.Printf("Failed to archive report: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, r); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func (s *Server) handleHistory(c *fiber.Ctx) error {
	if s.history == nil {
		return fiber.ErrNotFound
	}

	entries, err := s.history.List(c.QueryInt("limit", defaultHistoryLimit))
	if err != nil {
		log.Printf("Error reading report history: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(entries)
}
