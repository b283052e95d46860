package cmd

import (
	"fmt"
	"os"

	"xiaoyuan-cli/api"
	"xiaoyuan-cli/auth"
	"xiaoyuan-cli/guard"
	shared "xiaoyuan-cli/shared"
	"xiaoyuan-cli/term"

	"github.com/spf13/cobra"
)

const (
	verifyIdCardOption     = "Student ID card photo"
	verifyTranscriptOption = "Enrollment transcript photo"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Submit student verification documents",
	Args:  cobra.NoArgs,
	Run:   verify,
}

func init() {
	RootCmd.AddCommand(verifyCmd)
}

func verify(cmd *cobra.Command, args []string) {
	mustAllow(guard.RequiresUser)

	if user := auth.GetUser(); user.IsVerified {
		fmt.Println("✅ Your student identity is already verified")
		return
	}

	studentId, err := term.GetRequiredUserStringInput("Student ID:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting student ID: %v", err)
	}

	name, err := term.GetRequiredUserStringInput("Full name:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting name: %v", err)
	}

	selected, err := term.SelectFromList("Which document will you submit?", []string{
		verifyIdCardOption, verifyTranscriptOption,
	})
	if err != nil {
		term.OutputErrorAndExit("Error selecting document kind: %v", err)
	}

	kind := shared.VerificationDocumentIdCard
	if selected == verifyTranscriptOption {
		kind = shared.VerificationDocumentTranscript
	}

	facePath := mustPromptExistingFile("Path to your face photo:")
	documentPath := mustPromptExistingFile("Path to the document photo:")

	term.StartSpinner("")
	res, apiErr := api.Client.SubmitStudentVerification(shared.SubmitVerificationParams{
		Kind:              kind,
		StudentId:         studentId,
		Name:              name,
		FaceImagePath:     facePath,
		DocumentImagePath: documentPath,
	})
	term.StopSpinner()

	if apiErr != nil {
		term.OutputTransientError(apiErr)
		return
	}

	msg := res.Message
	if msg == "" {
		msg = "Verification submitted. Review usually takes 1-3 business days."
	}
	fmt.Println("✅ " + msg)
}

func mustPromptExistingFile(msg string) string {
	path, err := term.GetRequiredUserStringInput(msg)
	if err != nil {
		term.OutputErrorAndExit("Error prompting file path: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		term.OutputErrorAndExit("Can't read %s: %v", path, err)
	}

	return path
}
