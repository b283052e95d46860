package term

import (
	"fmt"
	"os"
	"strconv"

	shared "xiaoyuan-cli/shared"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

func RenderPostsTable(posts []*shared.Post) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Id", "Title", "Category", "School", "Author", "👍", "👎"})

	for i, p := range posts {
		likes := "-"
		dislikes := "-"
		if p.EvaluationStats != nil {
			likes = strconv.Itoa(p.EvaluationStats.Likes)
			dislikes = strconv.Itoa(p.EvaluationStats.Dislikes)
		}

		table.Append([]string{
			strconv.Itoa(i + 1),
			p.Id,
			shared.Truncate(p.Title, 40),
			p.Category,
			p.SchoolName,
			p.Author.Username,
			likes,
			dislikes,
		})
	}

	table.Render()
}

func RenderPostDetail(post *shared.Post, stats *shared.EvaluationStats) {
	color.New(color.Bold, ColorHiCyan).Println(post.Title)
	fmt.Printf("%s | %s", post.Category, post.SchoolName)
	if post.MajorName != "" {
		fmt.Printf(" | %s", post.MajorName)
	}
	fmt.Println()
	fmt.Printf("by %s (reputation %d)\n", color.New(color.Bold).Sprint(post.Author.Username), post.Author.Reputation)
	fmt.Println()
	fmt.Println(post.Content)

	if len(post.Images) > 0 {
		fmt.Println()
		color.New(ColorHiYellow).Printf("%d image(s):\n", len(post.Images))
		for _, img := range post.Images {
			fmt.Printf("  %s\n", img.ImageUrl)
		}
	}

	if stats == nil {
		stats = post.EvaluationStats
	}

	if stats != nil {
		fmt.Println()
		color.New(color.Bold).Printf("Evaluations: %d total\n", stats.Total)
		fmt.Printf("👍 %d (%.0f%%) | 😐 %d | 👎 %d (%.0f%%)\n",
			stats.Likes, stats.LikeRatio*100,
			stats.Neutrals,
			stats.Dislikes, stats.DislikeRatio*100)
	}
}
