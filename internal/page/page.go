// Package page composes the fixed panel sequence of each view.
//
// Composers are pure: the same records and theme always produce the same
// tree, and nothing is shared between calls.
package page

import (
	"fmt"

	"github.com/jask/pospreview/internal/content"
	"github.com/jask/pospreview/internal/panel"
	"github.com/jask/pospreview/internal/theme"
	"github.com/jask/pospreview/internal/view"
)

// Panel IDs of the report view, in render order.
const (
	ReportHeader       = "header"
	ReportStatus       = "status"
	ReportOverview     = "overview"
	ReportInstructions = "instructions"
	ReportFollowUp     = "followup"
	ReportFooter       = "footer"
)

// Panel IDs of the preview view, in render order.
const (
	PreviewHeader  = "branding"
	PreviewSummary = "summary"
	PreviewFooter  = "footer"
)

// ReportOrder is the fixed panel order of the report view.
var ReportOrder = []string{ReportHeader, ReportStatus, ReportOverview, ReportInstructions, ReportFollowUp, ReportFooter}

// PreviewOrder is the fixed panel order of the preview view.
var PreviewOrder = []string{PreviewHeader, PreviewSummary, PreviewFooter}

// Row places panels side by side. The backend decides when to collapse it.
func Row(id string, panels ...view.Node) view.Node {
	return view.Node{Kind: view.KindRow, ID: id, Columns: len(panels), Children: panels}
}

// ComposeReport builds the deployment-readiness page.
func ComposeReport(r content.Report, th theme.Theme) view.Node {
	card := view.Style{Tone: view.ToneBrand, Background: th.SurfaceFill}

	return view.Node{
		Kind:  view.KindPage,
		ID:    "report",
		Title: r.Header.Title,
		Style: view.Style{Accent: th.Brand},
		Children: []view.Node{
			{
				Kind:  view.KindHeader,
				ID:    ReportHeader,
				Title: r.Header.Title,
				Style: view.Style{Tone: view.ToneInverse, Background: th.HeaderFrom, BackgroundEnd: th.HeaderTo, Emphasis: true},
				Children: []view.Node{
					panel.Text(ReportHeader+".subtitle", r.Header.Subtitle, view.Style{}),
					panel.Text(ReportHeader+".credits", r.Header.Credits, view.Style{Tone: view.ToneMuted}),
				},
			},
			statusBanner(r.Banner, r.Results.Items),
			Row(ReportOverview,
				panel.Card("results", r.Results.Title, card,
					panel.StatusList("results.list", r.Results.Items, view.Style{}),
				),
				panel.Card("features", r.Features.Title, card,
					panel.Features("features.grid", r.Features.Items, 2, view.Style{ItemBackground: th.ChipFill}),
				),
			),
			panel.Card(ReportInstructions, r.Instructions.Title, card,
				panel.Heading("instructions.local.title", r.Instructions.Local.Title),
				panel.CodeBlock("instructions.local", r.Instructions.Local.Lines, view.Style{Tone: view.ToneInverse, Background: th.CodeFill}),
				panel.Heading("instructions.cloud.title", r.Instructions.Cloud.Title),
				panel.Steps("instructions.cloud", r.Instructions.Cloud.Items, view.Style{}),
				panel.Note("instructions.login", r.Instructions.Login, view.Style{Tone: view.ToneInfo}),
				panel.Buttons("instructions.actions", r.Instructions.Actions, view.Style{Tone: view.ToneBrand}),
			),
			Row(ReportFollowUp,
				panel.Card("requirements", r.Requirements.Title, card,
					panel.List("requirements.list", r.Requirements.Items, view.Style{}),
				),
				panel.Card("next", r.NextSteps.Title, card,
					panel.Steps("next.steps", r.NextSteps.Items, view.Style{}),
				),
			),
			{
				Kind:  view.KindFooter,
				ID:    ReportFooter,
				Style: view.Style{Tone: view.ToneMuted, Background: th.FooterFill, Centered: true},
				Children: []view.Node{
					panel.Text(ReportFooter+".title", r.Footer.Title, view.Style{}),
					panel.Text(ReportFooter+".body", r.Footer.Body, view.Style{}),
				},
			},
		},
	}
}

// statusBanner keeps the banner present in every render; only its tone and
// text follow the results.
func statusBanner(b content.Banner, results []content.TestResult) view.Node {
	passing := content.Passing(results)
	if passing == len(results) {
		return view.Node{
			Kind:  view.KindBanner,
			ID:    ReportStatus,
			Title: b.Title,
			Text:  b.Body,
			Icon:  panel.PassMark.Icon,
			Style: view.Style{Tone: panel.PassMark.Tone, Emphasis: true},
		}
	}
	failing := len(results) - passing
	return view.Node{
		Kind:  view.KindBanner,
		ID:    ReportStatus,
		Title: "System Status: NOT READY",
		Text:  fmt.Sprintf("%d of %d checks failing.", failing, len(results)),
		Icon:  panel.FailMark.Icon,
		Style: view.Style{Tone: panel.FailMark.Tone, Emphasis: true},
	}
}

// ComposePreview builds the branding preview page.
func ComposePreview(p content.Preview, th theme.Theme) view.Node {
	return view.Node{
		Kind:  view.KindPage,
		ID:    "preview",
		Title: p.Branding.Name,
		Style: view.Style{Accent: th.Brand},
		Children: []view.Node{
			{
				Kind:  view.KindHeader,
				ID:    PreviewHeader,
				Title: p.Branding.Name,
				Style: view.Style{Tone: view.ToneBrand, Background: th.SurfaceFill, Emphasis: true, Centered: true},
				Children: []view.Node{
					{
						Kind:  view.KindLogo,
						ID:    PreviewHeader + ".logo",
						Text:  p.Branding.Initials,
						Style: view.Style{Tone: view.ToneInverse, Background: th.LogoFrom, BackgroundEnd: th.LogoTo, Emphasis: true},
					},
					panel.Text(PreviewHeader+".owner", p.Branding.Owner, view.Style{}),
					panel.Text(PreviewHeader+".designer", p.Branding.Designer, view.Style{Tone: view.ToneMuted}),
				},
			},
			panel.Card(PreviewSummary, p.Title, view.Style{Tone: view.ToneBrand, Background: th.SurfaceFill},
				panel.Text("summary.intro", p.Intro, view.Style{}),
				panel.Box("summary.features", p.Features.Title, view.Style{Background: th.FeatureFill},
					panel.List("summary.features.list", featureStrings(p.Features.Items), view.Style{}),
				),
				panel.Box("summary.sections", p.Sections.Title, view.Style{Background: th.SectionFill},
					panel.Sections("summary.sections.chips", p.Sections.Items, view.Style{ItemBackground: th.ChipFill}),
				),
				panel.Box("summary.logo", p.Logo.Title, view.Style{Background: th.LogoFill},
					panel.Text("summary.logo.intro", p.Logo.Intro, view.Style{}),
					panel.List("summary.logo.places", p.Logo.Places, view.Style{}),
				),
			),
			{
				Kind:  view.KindFooter,
				ID:    PreviewFooter,
				Style: view.Style{Tone: view.ToneInverse, Background: th.FooterFill, Centered: true},
				Children: []view.Node{
					panel.Text(PreviewFooter+".title", p.Footer.Title, view.Style{Emphasis: true}),
					panel.Text(PreviewFooter+".body", p.Footer.Body, view.Style{}),
				},
			},
		},
	}
}

func featureStrings(items []content.FeatureItem) []string {
	out := make([]string, len(items))
	for i, f := range items {
		out[i] = string(f)
	}
	return out
}
