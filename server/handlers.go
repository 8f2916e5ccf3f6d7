// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package server

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"metrix/commands/api"
	"metrix/export"
	"metrix/terminal"

	"github.com/gin-gonic/gin"
)

type commandRequest struct {
	Line string `json:"line" binding:"required"`
}

// EntryJSON is one output log slot as returned by /api/command.
type EntryJSON struct {
	Kind  string `json:"kind"`
	Block string `json:"block,omitempty"`
	Text  string `json:"text"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) page(c *gin.Context) {
	p := s.repo.Load(c.Request.Context())
	body, err := renderPage(p)
	if err != nil {
		s.log.Errorw("failed to render page", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render page"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

func (s *Server) export(c *gin.Context) {
	format := export.Normalize(c.Param("format"))
	p := s.repo.Load(c.Request.Context())

	file, err := export.Build(format, p)
	if errors.Is(err, export.ErrUnsupportedFormat) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "formats": export.Formats})
		return
	}
	if err != nil {
		s.log.Errorw("export failed", "format", format, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename}))
	c.Data(http.StatusOK, file.MIME+"; charset=utf-8", file.Data)
}

// command runs one line in a fresh read-only session and drains its typing
// effects before answering.
func (s *Server) command(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Line) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "line is required"})
		return
	}

	name, _, err := api.ParseInput(req.Line)
	if err == nil && name == "set" {
		c.JSON(http.StatusForbidden, gin.H{"error": "the profile is read-only over HTTP"})
		return
	}

	sched := terminal.NewManualScheduler()
	sess := terminal.New(terminal.Options{
		Profile:   s.repo.Load(c.Request.Context()),
		Builder:   s.builder,
		Scheduler: sched,
		ReadOnly:  true,
		Logger:    s.log,
	})
	sess.Submit(req.Line)
	sched.RunUntilIdle(sess)

	entries := sess.Entries()
	out := make([]EntryJSON, 0, len(entries))
	for _, e := range entries {
		j := EntryJSON{Kind: e.Kind.String(), Text: e.PlainText()}
		if e.Kind == terminal.EntryBlock {
			j.Block = e.Block.Kind.String()
		}
		out = append(out, j)
	}
	c.JSON(http.StatusOK, gin.H{"entries": out})
}
