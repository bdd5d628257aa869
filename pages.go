package main

import (
	"embed"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

func (s *server) render(c *gin.Context, status int, name string, data gin.H) {
	c.HTML(status, name, data)
}

func (s *server) notFound(c *gin.Context) {
	s.render(c, http.StatusNotFound, "not-found.html", gin.H{"title": "Not Found"})
}

func (s *server) setupPageRoutes(r *gin.Engine) {
	// Home page route
	r.GET("/", func(c *gin.Context) {
		s.render(c, http.StatusOK, "index.html", gin.H{
			"title":      "Home",
			"headline":   Headline,
			"strengths":  Strengths,
			"programs":   featuredPrograms(),
			"experience": Experiences[0],
			"resume":     Resumes[0],
		})
	})

	r.GET("/about", func(c *gin.Context) {
		s.render(c, http.StatusOK, "about.html", gin.H{
			"title":          "About",
			"aboutMe":        AboutMe,
			"values":         Values,
			"certifications": Certifications,
		})
	})

	r.GET("/experience", func(c *gin.Context) {
		s.render(c, http.StatusOK, "experience.html", gin.H{
			"title":       "Experience",
			"experiences": Experiences,
		})
	})

	r.GET("/skills", func(c *gin.Context) {
		s.render(c, http.StatusOK, "skills.html", gin.H{
			"title":          "Skills",
			"strengths":      Strengths,
			"skillGroups":    SkillGroups,
			"certifications": Certifications,
			"faqs":           FAQs,
		})
	})

	r.GET("/programs", func(c *gin.Context) {
		s.render(c, http.StatusOK, "programs.html", gin.H{
			"title":    "Programs",
			"programs": Programs,
			"tags":     programTags(),
		})
	})

	r.GET("/programs/:slug", func(c *gin.Context) {
		program, ok := findProgram(c.Param("slug"))
		if !ok {
			s.notFound(c)
			return
		}
		s.render(c, http.StatusOK, "program.html", gin.H{
			"title":   program.Title,
			"program": program,
			"crumbs":  programCrumbs(program, nil),
		})
	})

	r.GET("/programs/:slug/:section", func(c *gin.Context) {
		program, ok := findProgram(c.Param("slug"))
		if !ok {
			s.notFound(c)
			return
		}
		section, ok := program.Section(c.Param("section"))
		if !ok {
			s.notFound(c)
			return
		}
		s.render(c, http.StatusOK, "program-section.html", gin.H{
			"title":   section.Title,
			"program": program,
			"section": section,
			"crumbs":  programCrumbs(program, &section),
		})
	})

	r.GET("/resume", func(c *gin.Context) {
		s.render(c, http.StatusOK, "resume.html", gin.H{
			"title":      "Resume",
			"resumes":    Resumes,
			"experience": Experiences,
			"skills":     SkillGroups,
		})
	})

	r.GET("/resume/download/:file", s.downloadResume)

	r.GET("/contact", func(c *gin.Context) {
		s.render(c, http.StatusOK, "contact.html", gin.H{
			"title":    "Contact",
			"channels": ContactChannels,
		})
	})

	api := r.Group("/api/content")
	api.GET("/experience", func(c *gin.Context) {
		c.JSON(http.StatusOK, Experiences)
	})
	api.GET("/skills", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"strengths":      Strengths,
			"groups":         SkillGroups,
			"certifications": Certifications,
			"faqs":           FAQs,
		})
	})
	api.GET("/programs", func(c *gin.Context) {
		c.JSON(http.StatusOK, Programs)
	})
	api.GET("/programs/:slug", func(c *gin.Context) {
		program, ok := findProgram(c.Param("slug"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
			return
		}
		c.JSON(http.StatusOK, program)
	})
}

// downloadResume serves one of the known resume files and counts the
// download. Anything not listed in Resumes is a 404.
func (s *server) downloadResume(c *gin.Context) {
	resume, ok := findResume(c.Param("file"))
	if !ok {
		s.notFound(c)
		return
	}

	path := filepath.Join(s.cfg.ResumeDir, resume.File)
	if _, err := os.Stat(path); err != nil {
		s.log.Error("resume file unavailable", "file", resume.File, "error", err)
		s.notFound(c)
		return
	}

	if err := s.store.RecordDownload(c.Request.Context(), resume.File, time.Now()); err != nil {
		s.log.Error("recording download", "file", resume.File, "error", err)
	}
	s.metrics.ResumeDownload(resume.File)

	c.FileAttachment(path, resume.File)
}
