package page

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jask/pospreview/internal/content"
	"github.com/jask/pospreview/internal/theme"
	"github.com/jask/pospreview/internal/view"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestReportPanelOrder(t *testing.T) {
	root := ComposeReport(content.DefaultReport(), theme.Report())
	if diff := cmp.Diff(ReportOrder, root.ChildIDs()); diff != "" {
		t.Fatalf("report order mismatch (-want +got):\n%s", diff)
	}
	kinds := make([]view.Kind, 0, len(root.Children))
	for _, c := range root.Children {
		kinds = append(kinds, c.Kind)
	}
	want := []view.Kind{view.KindHeader, view.KindBanner, view.KindRow, view.KindCard, view.KindRow, view.KindFooter}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("report kinds mismatch (-want +got):\n%s", diff)
	}

	overview, _ := root.Find(ReportOverview)
	if diff := cmp.Diff([]string{"results", "features"}, overview.ChildIDs()); diff != "" {
		t.Fatalf("overview row mismatch (-want +got):\n%s", diff)
	}
	followUp, _ := root.Find(ReportFollowUp)
	if diff := cmp.Diff([]string{"requirements", "next"}, followUp.ChildIDs()); diff != "" {
		t.Fatalf("follow-up row mismatch (-want +got):\n%s", diff)
	}
}

func TestPreviewPanelOrder(t *testing.T) {
	root := ComposePreview(content.DefaultPreview(), theme.Preview())
	if diff := cmp.Diff(PreviewOrder, root.ChildIDs()); diff != "" {
		t.Fatalf("preview order mismatch (-want +got):\n%s", diff)
	}
	summary, _ := root.Find(PreviewSummary)
	want := []string{"summary.intro", "summary.features", "summary.sections", "summary.logo"}
	if diff := cmp.Diff(want, summary.ChildIDs()); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
	chips, ok := root.Find("summary.sections.chips")
	require.True(t, ok)
	require.Equal(t, view.KindGrid, chips.Kind)
	require.Len(t, chips.Children, 7)
	require.Equal(t, "📊 لوحة المعلومات", chips.Children[0].Text)
}

func TestReportInstructionsCard(t *testing.T) {
	root := ComposeReport(content.DefaultReport(), theme.Report())
	card, ok := root.Find(ReportInstructions)
	require.True(t, ok)
	want := []string{
		"instructions.local.title",
		"instructions.local",
		"instructions.cloud.title",
		"instructions.cloud",
		"instructions.login",
		"instructions.actions",
	}
	require.Equal(t, want, card.ChildIDs())

	code, _ := root.Find("instructions.local")
	require.Equal(t, view.KindCode, code.Kind)
	require.Equal(t, "streamlit run app.py", code.Children[len(code.Children)-1].Text)
	require.Equal(t, "#212121", code.Style.Background)
}

func TestReportFeatureGridExample(t *testing.T) {
	r := content.DefaultReport()
	r.Features.Items = []content.FeatureItem{"🧾 Complete POS System", "📦 Product Management"}
	root := ComposeReport(r, theme.Report())

	grid, ok := root.Find("features.grid")
	require.True(t, ok)
	require.Equal(t, view.KindGrid, grid.Kind)
	require.Len(t, grid.Children, 2)
	require.Equal(t, view.KindChip, grid.Children[0].Kind)
	require.Equal(t, "🧾 Complete POS System", grid.Children[0].Text)
	require.Equal(t, "📦 Product Management", grid.Children[1].Text)
}

func TestEmptyCollectionsKeepPanels(t *testing.T) {
	r := content.DefaultReport()
	r.Features.Items = nil
	r.Results.Items = []content.TestResult{}
	root := ComposeReport(r, theme.Report())

	if diff := cmp.Diff(ReportOrder, root.ChildIDs()); diff != "" {
		t.Fatalf("empty collections changed the layout (-want +got):\n%s", diff)
	}
	grid, ok := root.Find("features.grid")
	if !ok || len(grid.Children) != 0 {
		t.Fatalf("features grid = %+v, want empty container", grid)
	}
	list, ok := root.Find("results.list")
	if !ok || len(list.Children) != 0 {
		t.Fatalf("results list = %+v, want empty container", list)
	}
}

func TestStatusBannerFollowsResults(t *testing.T) {
	root := ComposeReport(content.DefaultReport(), theme.Report())
	banner, _ := root.Find(ReportStatus)
	if banner.Style.Tone != view.ToneSuccess || banner.Icon != view.IconCheck {
		t.Fatalf("all-pass banner = %+v", banner)
	}
	if banner.Title != content.DefaultReport().Banner.Title {
		t.Fatalf("banner title = %q", banner.Title)
	}

	r := content.DefaultReport()
	r.Results.Items[2].Status = content.StatusFail
	root = ComposeReport(r, theme.Report())
	banner, _ = root.Find(ReportStatus)
	if banner.Style.Tone != view.ToneError || banner.Icon != view.IconCross {
		t.Fatalf("failing banner = %+v", banner)
	}
	if !strings.Contains(banner.Text, "1 of 6") {
		t.Fatalf("failing banner text = %q", banner.Text)
	}
}

func TestComposeIsPure(t *testing.T) {
	a := ComposeReport(content.DefaultReport(), theme.Report())
	b := ComposeReport(content.DefaultReport(), theme.Report())
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("repeated composition differs (-a +b):\n%s", diff)
	}
}

func TestConcurrentRendersAreIndependent(t *testing.T) {
	reg := DefaultRegistry()
	want := map[string]view.Node{}
	for _, v := range reg.Views() {
		want[v.Name] = v.Compose(content.Defaults())
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 8; i++ {
		for _, v := range reg.Views() {
			wg.Add(1)
			go func(v View) {
				defer wg.Done()
				got := v.Compose(content.Defaults())
				if diff := cmp.Diff(want[v.Name], got); diff != "" {
					errs <- v.Name + ": " + diff
				}
			}(v)
		}
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatalf("concurrent render differs: %s", e)
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := DefaultRegistry()
	require.Equal(t, []string{"report", "preview"}, reg.Names())

	v, err := reg.Lookup(" Report ")
	require.NoError(t, err)
	require.Equal(t, "report", v.Name)

	_, err = reg.Lookup("reprot")
	require.True(t, errors.Is(err, ErrUnknownView))
	require.Contains(t, err.Error(), `did you mean "report"`)

	_, err = reg.Lookup("dashboard-of-everything")
	require.True(t, errors.Is(err, ErrUnknownView))
	require.Contains(t, err.Error(), "available: report, preview")
}
