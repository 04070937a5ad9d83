package renderer

import (
	"bytes"
	"fmt"

	"github.com/equipage/equipage"
	md "github.com/nao1215/markdown"
)

// HealthMarkdown renders the diagnosis as a markdown report: rating
// legend, top assets, the full table, and the financial advice section.
func HealthMarkdown(d *equipage.Diagnosis, topN int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("🔍 Equipment Health Report")
	doc.PlainText(fmt.Sprintf("> 📅 Diagnosis date: %s", d.On))
	doc.PlainText(fmt.Sprintf("> 📊 Equipment count: %d", len(d.Results)))
	doc.HorizontalRule()

	doc.H2("📈 Rating scale")
	doc.Table(md.TableSet{
		Header: []string{"Score", "Rating", "Advice"},
		Rows: [][]string{
			{"85+", "🏆 Epic", "Use it until it dies"},
			{"70-84", "🟢 Excellent", "Keep using it"},
			{"55-69", "🟡 Good", "Normal use, watch the maintenance"},
			{"40-54", "🟠 Fair", "Evaluate whether it needs replacing"},
			{"< 40", "🔴 Replace", "Consider selling or upgrading"},
		},
	})
	doc.HorizontalRule()

	top := d.Top(topN)
	doc.H2(fmt.Sprintf("🏆 Top %d assets", len(top)))
	topRows := make([][]string, 0, len(top))
	for i, h := range top {
		topRows = append(topRows, []string{
			fmt.Sprintf("%d", i+1),
			h.Name,
			fmt.Sprintf("%s %.1f", h.Rating, h.HealthScore),
			h.DailyCost.Round(2).String(),
			fmt.Sprintf("%.1fy", h.YearsUsed),
			h.Advice,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Rank", "Device", "Health", "Daily cost", "Age", "Advice"},
		Rows:   topRows,
	})
	doc.HorizontalRule()

	doc.H2("📋 Full diagnosis")
	rows := make([][]string, 0, len(d.Results))
	for _, h := range d.Results {
		rows = append(rows, []string{
			h.Name,
			fmt.Sprintf("%s %.1f", h.Rating, h.HealthScore),
			h.DailyCost.Round(2).String(),
			h.ResidualValue.Round(2).String(),
			fmt.Sprintf("%.1fy", h.YearsUsed),
			h.Advice,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Device", "Health", "Daily cost", "Residual", "Age", "Advice"},
		Rows:   rows,
	})
	doc.HorizontalRule()

	doc.H2("💰 Financial advice")
	doc.H3("Sell now")
	if candidates := d.SellCandidates(); len(candidates) > 0 {
		doc.PlainText(fmt.Sprintf("Selling **%d** device(s) would recover about **%s**.",
			len(candidates), d.RecoverableValue()))
		sellRows := make([][]string, 0, len(candidates))
		for _, h := range candidates {
			sellRows = append(sellRows, []string{h.Name, h.ResidualValue.String(), h.Advice})
		}
		doc.Table(md.TableSet{
			Header: []string{"Device", "Residual", "Advice"},
			Rows:   sellRows,
		})
	} else {
		doc.PlainText("✅ Everything is in good shape, nothing to sell right now.")
	}

	doc.H3("Annual budget")
	doc.PlainText(fmt.Sprintf("- 📊 Estimated residual value: %s", d.TotalResidual))
	doc.PlainText(fmt.Sprintf("- 💡 Suggested annual refresh budget: %s (2%% of residual)", d.RefreshBudget()))
	doc.HorizontalRule()
	doc.PlainText(fmt.Sprintf("*Generated by equipage on %s*", d.On))

	return doc.String()
}

// RegistryMarkdown renders the calculation output as the markdown
// document pushed by the sync command.
func RegistryMarkdown(doc *equipage.ResultsDocument) string {
	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)

	out.H1("🖥️ Equipment Asset Registry")
	out.PlainText(fmt.Sprintf("> Last updated: %s", doc.Meta.CalculatedAt))

	out.H2("📊 Summary")
	out.PlainText(fmt.Sprintf("- **Total Equipment**: %d items", doc.Meta.TotalEquipment))
	out.PlainText(fmt.Sprintf("- **Total Investment**: %s", doc.Meta.TotalPrice))
	out.PlainText(fmt.Sprintf("- **Residual Value**: %s", doc.Meta.TotalResidual))

	out.H2("📋 Equipment List")
	rows := make([][]string, 0, len(doc.Results))
	for _, r := range doc.Results {
		e, c := r.Equipment, r.Calculation
		category := e.Category
		if category == "" {
			category = "other"
		}
		rows = append(rows, []string{
			e.Name,
			category,
			e.PurchaseDate.String(),
			e.Price.String(),
			fmt.Sprintf("%d", c.DaysUsed),
			c.DailyCost.Round(2).String(),
			fmt.Sprintf("%s %s", c.Indicator, c.Status),
			c.ResidualValue.String(),
		})
	}
	out.Table(md.TableSet{
		Header: []string{"Name", "Category", "Purchase Date", "Price", "Days Used", "Daily Cost", "Status", "Residual"},
		Rows:   rows,
	})
	out.HorizontalRule()
	out.PlainText("_Generated by equipage_")

	return out.String()
}
