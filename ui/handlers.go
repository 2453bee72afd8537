package ui

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"surveylens/app"
	"surveylens/domain/stats"
	apperrors "surveylens/internal/errors"

	"github.com/gin-gonic/gin"
)

// resolveLanguage picks the request language, falling back to the
// configured default only when the request carries no tag at all. An
// explicit unknown tag is a hard error, never a silent fallback.
func (s *Server) resolveLanguage(c *gin.Context) (string, map[string]string, bool) {
	lang := c.Query("lang")
	if lang == "" {
		lang = c.PostForm("lang")
	}
	if lang == "" {
		lang = s.cfg.Analysis.DefaultLang
	}

	labels, err := s.bundle.Labels(lang)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  apperrors.GetCode(err),
		})
		return "", nil, false
	}
	return lang, labels, true
}

// handleHome renders the Home page from the localized markdown blurb.
func (s *Server) handleHome(c *gin.Context) {
	lang, labels, ok := s.resolveLanguage(c)
	if !ok {
		return
	}

	blurb, err := s.bundle.HomeMarkdown(lang)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": apperrors.GetCode(err)})
		return
	}

	s.renderTemplate(c, "home.html", gin.H{
		"PageData": s.newPageData(lang, labels, "home"),
		"BodyHTML": mdToHTML(blurb),
	})
}

// handleAnalyzer renders the Analyzer page: upload control plus, once a
// dataset is loaded, preview, descriptives, frequency table and charts.
func (s *Server) handleAnalyzer(c *gin.Context) {
	lang, labels, ok := s.resolveLanguage(c)
	if !ok {
		return
	}

	view := s.buildAnalyzerView(c.Request.Context(), lang, labels, c.Query("col"))
	s.renderTemplate(c, "analyzer.html", view)
}

// handleUpload ingests a CSV/Excel file and replaces the session dataset.
// Loader errors abort this file and are shown on the Analyzer page.
func (s *Server) handleUpload(c *gin.Context) {
	lang, labels, ok := s.resolveLanguage(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("dataset")
	if err != nil {
		s.renderAnalyzerError(c, lang, labels, "No file uploaded")
		return
	}
	defer file.Close()

	maxBytes := s.cfg.Upload.MaxSizeMB * 1024 * 1024
	if header.Size > maxBytes {
		s.renderAnalyzerError(c, lang, labels, "File exceeds the upload size limit")
		return
	}

	ds, err := s.reader.LoadTable(file, header.Filename)
	if err != nil {
		log.Printf("[UI] upload of %q failed: %v", header.Filename, err)
		s.renderAnalyzerError(c, lang, labels, err.Error())
		return
	}

	s.store.Put(ds)
	log.Printf("[UI] dataset %q loaded (%d rows)", ds.Name, ds.RowCount)
	c.Redirect(http.StatusSeeOther, "/analyzer?lang="+url.QueryEscape(lang))
}

// handleAnalyze runs the correlation engine once per click. Engine errors
// are shown in the result area while every earlier section stays intact.
func (s *Server) handleAnalyze(c *gin.Context) {
	lang, labels, ok := s.resolveLanguage(c)
	if !ok {
		return
	}

	view := s.buildAnalyzerView(c.Request.Context(), lang, labels, c.PostForm("col"))
	view.SelectedX = c.PostForm("x")
	view.SelectedY = c.PostForm("y")
	view.Method = c.PostForm("method")

	ds, ok := s.store.Current()
	if !ok {
		view.Error = "Upload a dataset before running an analysis"
		s.renderTemplate(c, "analyzer.html", view)
		return
	}

	method, err := stats.ParseMethod(view.Method)
	if err != nil {
		view.Error = "Unknown correlation method: " + view.Method
		s.renderTemplate(c, "analyzer.html", view)
		return
	}

	outcome, err := s.analysis.Run(ds, app.AnalysisRequest{
		XColumn:  view.SelectedX,
		YColumn:  view.SelectedY,
		Method:   method,
		Language: lang,
	})
	if err != nil {
		log.Printf("[UI] analysis failed (%s): %v", apperrors.GetCode(err), err)
		view.Error = err.Error()
		s.renderTemplate(c, "analyzer.html", view)
		return
	}

	view.Result = &resultView{
		Coefficient:      outcome.Result.Coefficient,
		PValue:           outcome.Result.PValue,
		SampleSize:       outcome.Result.SampleSize,
		Method:           outcome.Result.Method.Display(),
		StrengthText:     outcome.StrengthText,
		SignificanceText: outcome.SignificanceText,
		NarrativeHTML:    mdToHTML(outcome.Result.Narrative),
		Scatter:          outcome.Scatter,
	}
	s.renderTemplate(c, "analyzer.html", view)
}

func (s *Server) renderAnalyzerError(c *gin.Context, lang string, labels map[string]string, message string) {
	view := s.buildAnalyzerView(c.Request.Context(), lang, labels, "")
	view.Error = strings.TrimSpace(message)
	s.renderTemplate(c, "analyzer.html", view)
}
