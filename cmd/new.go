package cmd

import (
	"fmt"
	"os"

	"xiaoyuan-cli/api"
	"xiaoyuan-cli/guard"
	shared "xiaoyuan-cli/shared"
	"xiaoyuan-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var newPostImages []string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a post with optional images",
	Args:  cobra.NoArgs,
	Run:   newPost,
}

func init() {
	RootCmd.AddCommand(newCmd)

	newCmd.Flags().StringArrayVarP(&newPostImages, "image", "i", nil, "Attach an image file (repeatable)")
}

func newPost(cmd *cobra.Command, args []string) {
	// post creation is gated on verified student identity
	mustAllow(guard.RequiresVerified)

	for _, path := range newPostImages {
		if _, err := os.Stat(path); err != nil {
			term.OutputErrorAndExit("Can't read image %s: %v", path, err)
		}
	}

	title, err := term.GetRequiredUserStringInput("Title:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting title: %v", err)
	}

	content, err := term.GetRequiredUserStringInput("Content:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting content: %v", err)
	}

	category, err := term.SelectFromList("Category:", []string{
		"campus-life", "study", "dining", "housing", "clubs", "other",
	})
	if err != nil {
		term.OutputErrorAndExit("Error selecting category: %v", err)
	}

	schoolName, err := term.GetRequiredUserStringInput("School:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting school: %v", err)
	}

	majorName, err := term.GetUserStringInput("Major (optional):")
	if err != nil {
		term.OutputErrorAndExit("Error prompting major: %v", err)
	}

	term.StartSpinner("")
	post, apiErr := api.Client.CreatePost(shared.CreatePostParams{
		Title:      title,
		Content:    content,
		Category:   category,
		SchoolName: schoolName,
		MajorName:  majorName,
		ImagePaths: newPostImages,
	})
	term.StopSpinner()

	if apiErr != nil {
		// entered values were already echoed to the terminal; retry is safe
		term.OutputTransientError(apiErr)
		return
	}

	fmt.Printf("✅ Created post %s\n", color.New(color.Bold, term.ColorHiGreen).Sprint(post.Id))
	term.PrintCmds("", "show", "posts")
}
