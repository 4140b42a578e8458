package books

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Cbush039/book-review-app/lib/account"
	"github.com/Cbush039/book-review-app/lib/books"
	"github.com/spf13/cobra"
)

var (
	addCmd = &cobra.Command{
		Use:   "add",
		Short: "Add a book to your collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			acc, err := svc.RequireSession()
			if err != nil {
				return err
			}

			title, _ := cmd.Flags().GetString("title")
			author, _ := cmd.Flags().GetString("author")
			rating, _ := cmd.Flags().GetInt("rating")
			statusStr, _ := cmd.Flags().GetString("status")
			review, _ := cmd.Flags().GetString("review")

			status, err := books.ParseStatus(statusStr)
			if err != nil {
				return err
			}

			book, err := svc.Books.Add(acc, books.Draft{
				Title:  title,
				Author: author,
				Rating: rating,
				Status: status,
				Review: review,
			})
			if err != nil {
				return err
			}

			fmt.Printf("added %q (id %s)\n", book.Title, book.ID)
			return printCollection(acc)
		},
	}
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List your collection, optionally searched and filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			acc, err := svc.RequireSession()
			if err != nil {
				return err
			}

			search, _ := cmd.Flags().GetString("search")
			status, _ := cmd.Flags().GetString("status")

			if status != books.StatusAll {
				if _, err := books.ParseStatus(status); err != nil {
					return err
				}
			}

			matched, err := svc.Books.Query(acc, books.Filter{Search: search, Status: status})
			if err != nil {
				return err
			}
			printBooks(matched)
			return nil
		},
	}
	rateCmd = &cobra.Command{
		Use:   "rate [id] [rating]",
		Short: "Set the rating of a book (0-5, 0 = unrated)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			acc, err := svc.RequireSession()
			if err != nil {
				return err
			}

			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating must be a number: %w", err)
			}

			if _, err := svc.Books.Update(acc, args[0], books.Patch{Rating: &rating}); err != nil {
				return err
			}
			return printCollection(acc)
		},
	}
	statusCmd = &cobra.Command{
		Use:   "status [id] [status]",
		Short: "Set the reading status of a book",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			acc, err := svc.RequireSession()
			if err != nil {
				return err
			}

			status, err := books.ParseStatus(args[1])
			if err != nil {
				return err
			}

			if _, err := svc.Books.Update(acc, args[0], books.Patch{Status: &status}); err != nil {
				return err
			}
			return printCollection(acc)
		},
	}
	reviewCmd = &cobra.Command{
		Use:   "review [id] [text]",
		Short: "Set or replace the review of a book",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			acc, err := svc.RequireSession()
			if err != nil {
				return err
			}

			review := strings.Join(args[1:], " ")
			if _, err := svc.Books.Update(acc, args[0], books.Patch{Review: &review}); err != nil {
				return err
			}
			return printCollection(acc)
		},
	}
	updateCmd = &cobra.Command{
		Use:   "update [id]",
		Short: "Update any fields of a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := svc.RequireSession()
			if err != nil {
				return err
			}

			// Only flags that were set on the command line become part of
			// the patch; everything else is left untouched.
			var patch books.Patch
			if cmd.Flags().Changed("title") {
				title, _ := cmd.Flags().GetString("title")
				patch.Title = &title
			}
			if cmd.Flags().Changed("author") {
				author, _ := cmd.Flags().GetString("author")
				patch.Author = &author
			}
			if cmd.Flags().Changed("rating") {
				rating, _ := cmd.Flags().GetInt("rating")
				patch.Rating = &rating
			}
			if cmd.Flags().Changed("status") {
				statusStr, _ := cmd.Flags().GetString("status")
				status, err := books.ParseStatus(statusStr)
				if err != nil {
					return err
				}
				patch.Status = &status
			}
			if cmd.Flags().Changed("review") {
				review, _ := cmd.Flags().GetString("review")
				patch.Review = &review
			}

			if _, err := svc.Books.Update(acc, args[0], patch); err != nil {
				return err
			}
			return printCollection(acc)
		},
	}
	deleteCmd = &cobra.Command{
		Use:   "delete [id]",
		Short: "Remove a book from your collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			acc, err := svc.RequireSession()
			if err != nil {
				return err
			}

			if err := svc.Books.Delete(acc, args[0]); err != nil {
				return err
			}
			return printCollection(acc)
		},
	}
)

// printCollection reloads and prints the full collection, so the output
// always reflects the freshly persisted state.
func printCollection(acc *account.Account) error {
	collection, err := svc.Books.List(acc)
	if err != nil {
		return err
	}
	printBooks(collection)
	return nil
}

// printBooks renders books as an aligned table with a trailing count.
func printBooks(collection []books.Book) {
	if len(collection) == 0 {
		fmt.Println("no books found")
		return
	}

	fmt.Printf("%-15s %-30s %-25s %-7s %-13s %s\n", "ID", "TITLE", "AUTHOR", "RATING", "STATUS", "ADDED")
	for _, book := range collection {
		rating := strconv.Itoa(book.Rating)
		if book.Rating == 0 {
			rating = "-"
		}
		fmt.Printf("%-15s %-30s %-25s %-7s %-13s %s\n",
			book.ID, truncate(book.Title, 30), truncate(book.Author, 25),
			rating, book.Status, book.DateAdded.Format("2006-01-02"))
		if book.Review != "" {
			fmt.Printf("    review: %s\n", truncate(book.Review, 100))
		}
	}
	fmt.Printf("%d book(s)\n", len(collection))
}

// truncate shortens s to max characters, marking the cut with an ellipsis.
// Cuts happen on rune boundaries so multibyte text stays intact.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
