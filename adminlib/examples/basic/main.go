// ABOUTME: Basic example showing the library admin client against a running backend
// ABOUTME: Demonstrates listing, searching, saving and error handling

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"library-admin/adminlib"
	"library-admin/core/tablesort"
)

func main() {
	baseURL := os.Getenv("BACKEND_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	// Example 1: Create a client with an in-memory view state
	client, err := adminlib.NewClient(
		adminlib.WithBaseURL(baseURL),
		adminlib.WithDefaultDependencies(),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx := context.Background()

	// Example 2: Dashboard
	fmt.Println("=== Dashboard ===")
	dash, err := client.Dashboard(ctx)
	if err != nil {
		log.Printf("Error loading dashboard: %v\n", err)
	} else {
		for _, card := range dash.Cards {
			fmt.Printf("%-20s %d\n", card.Label, card.Value)
		}
	}

	// Example 3: First page of books sorted by title
	fmt.Println("\n=== Books ===")
	books, err := client.List(ctx, adminlib.Books, adminlib.WithSort("Title", tablesort.Ascending))
	if err != nil {
		log.Printf("Error listing books: %v\n", err)
	} else {
		for _, row := range books.Rows {
			fmt.Printf("- %s by %s\n", row.Cell("Title"), row.Cell("Author"))
		}
		fmt.Printf("Page %d of %d\n", books.Pagination.Current, books.Pagination.TotalPages)
	}

	// Example 4: Overdue borrowings
	fmt.Println("\n=== Overdue Borrowings ===")
	overdue, err := client.List(ctx, adminlib.Borrowings, adminlib.WithStatus("overdue"))
	if err != nil {
		log.Printf("Error listing borrowings: %v\n", err)
	} else if overdue.Empty() {
		fmt.Println(overdue.EmptyMessage)
	} else {
		for _, row := range overdue.Rows {
			fmt.Printf("- %s: %s (due %s)\n", row.Cell("MemberName"), row.Cell("BookTitle"), row.Cell("DueDate"))
		}
	}

	// Example 5: Add a publisher
	fmt.Println("\n=== Add Publisher ===")
	result, err := client.Save(ctx, adminlib.Publishers, 0, adminlib.Record{
		"Name":  "Gollancz",
		"Email": "contact@gollancz.example",
	})
	if err != nil {
		log.Printf("Error saving publisher: %v\n", err)
	} else {
		fmt.Println(result.Message)
	}

	// Example 6: Books that can be lent
	fmt.Println("\n=== Books Available To Borrow ===")
	choices, err := client.Options(ctx, adminlib.Borrowings, "BookID")
	if err != nil {
		log.Printf("Error loading book choices: %v\n", err)
	} else {
		for _, choice := range choices {
			fmt.Printf("%d: %s\n", choice.Value, choice.Label)
		}
	}

	// Example 7: Error handling
	fmt.Println("\n=== Error Handling ===")
	_, err = client.Get(ctx, adminlib.Members, 999999)
	if err != nil {
		switch {
		case adminlib.IsNotFoundError(err):
			fmt.Println("Member does not exist:", err)
		case adminlib.IsNetworkError(err):
			fmt.Println("Backend error occurred:", err)
		default:
			fmt.Println("Other error occurred:", err)
		}
	}

	for _, n := range client.Notifications() {
		fmt.Printf("[%s] %s\n", n.Kind, n.Message)
	}

	fmt.Println("\nDone!")
}
