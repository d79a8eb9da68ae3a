package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"
	"sort"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nyc-safety-calculator/internal/component/calculator"
	"github.com/nyc-safety-calculator/internal/component/menu"
	"github.com/nyc-safety-calculator/internal/pkg/utils"
	"github.com/nyc-safety-calculator/internal/usecase"
	"github.com/nyc-safety-calculator/internal/usecase/dto"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Метаданные страницы-оболочки
const (
	PageTitle       = "NYC Safety Calculator"
	PageDescription = "Calculate safety improvements based on NYC neighborhood locations"
)

// PageData - данные для шаблона страницы
type PageData struct {
	PageTitle       string
	Description     string
	View            calculator.View
	ResultsTitle    string
	MenuID          string
	MenuOpen        bool
	MenuActive      bool
	ButtonLabel     string
	ButtonHref      string
	CollapseHref    string
	Groups          []GroupLink
	CalculateFields []HiddenField
}

// GroupLink - группа меню со ссылкой раскрытия
type GroupLink struct {
	Label    string
	Href     string
	Expanded bool
	Items    []ItemLink
}

// ItemLink - пункт меню со ссылкой выбора
type ItemLink struct {
	Label string
	Href  string
}

// HiddenField - скрытое поле формы расчёта
type HiddenField struct {
	Name  string
	Value string
}

// PageHandler - хендлер страницы калькулятора
type PageHandler struct {
	calculatorUC *usecase.CalculatorUseCase
	templates    *template.Template
	logger       *zap.Logger
}

// NewPageHandler - создание нового хендлера страницы
func NewPageHandler(calculatorUC *usecase.CalculatorUseCase, logger *zap.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		calculatorUC: calculatorUC,
		templates:    tmpl,
		logger:       logger,
	}, nil
}

// RenderPage - рендеринг страницы калькулятора
func (h *PageHandler) RenderPage(c *fiber.Ctx) error {
	req := parsePageRequest(c)

	resp, err := h.calculatorUC.RenderPage(req)
	if err != nil {
		h.logger.Debug("Invalid page request", zap.Error(err))
		return utils.SendError(c, err)
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "page.html", buildPageData(resp)); err != nil {
		h.logger.Error("Failed to render page", zap.Error(err))
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func parsePageRequest(c *fiber.Ctx) dto.PageRequest {
	args := c.Context().QueryArgs()

	var openGroups []string
	for _, g := range args.PeekMulti("og") {
		openGroups = append(openGroups, string(g))
	}

	return dto.PageRequest{
		State: dto.PageState{
			Open:       c.Query("open") == "1",
			OpenGroups: openGroups,
			Group:      c.Query("group"),
			Item:       c.Query("item"),
			ResultItem: c.Query("ri"),
		},
		Action:      dto.PageAction(c.Query("action")),
		TargetGroup: c.Query("target_group"),
		TargetItem:  c.Query("target_item"),
	}
}

func buildPageData(resp *dto.PageResponse) PageData {
	st := resp.State

	data := PageData{
		PageTitle:       PageTitle,
		Description:     PageDescription,
		View:            resp.View,
		ResultsTitle:    calculator.ResultsTitle,
		MenuID:          string(menu.DefaultRegion),
		MenuOpen:        st.Open,
		MenuActive:      st.Open || len(st.OpenGroups) > 0,
		ButtonLabel:     menu.ButtonLabel,
		ButtonHref:      pageHref(st, dto.ActionToggle, "", ""),
		CollapseHref:    pageHref(st, dto.ActionOutside, "", ""),
		CalculateFields: hiddenFields(stateValues(st, dto.ActionCalculate, "", "")),
	}

	for _, row := range resp.View.MenuRows {
		switch row.Kind {
		case menu.RowGroup:
			data.Groups = append(data.Groups, GroupLink{
				Label:    row.Label,
				Href:     pageHref(st, dto.ActionGroup, row.Group, ""),
				Expanded: row.Expanded,
			})
		case menu.RowItem:
			last := &data.Groups[len(data.Groups)-1]
			last.Items = append(last.Items, ItemLink{
				Label: row.Label,
				Href:  pageHref(st, dto.ActionSelect, row.Group, row.Item),
			})
		}
	}

	return data
}

func stateValues(st dto.PageState, action dto.PageAction, group, item string) url.Values {
	v := url.Values{}
	if st.Open {
		v.Set("open", "1")
	}
	for _, g := range st.OpenGroups {
		v.Add("og", g)
	}
	if st.Item != "" {
		v.Set("group", st.Group)
		v.Set("item", st.Item)
	}
	if st.ResultItem != "" {
		v.Set("ri", st.ResultItem)
	}
	if action != dto.ActionNone {
		v.Set("action", string(action))
	}
	if group != "" {
		v.Set("target_group", group)
	}
	if item != "" {
		v.Set("target_item", item)
	}
	return v
}

func pageHref(st dto.PageState, action dto.PageAction, group, item string) string {
	return "/?" + stateValues(st, action, group, item).Encode()
}

func hiddenFields(v url.Values) []HiddenField {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)

	var fields []HiddenField
	for _, name := range names {
		for _, value := range v[name] {
			fields = append(fields, HiddenField{Name: name, Value: value})
		}
	}
	return fields
}
