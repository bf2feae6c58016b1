package client

import (
	"github.com/MKhiriev/pass-the-pages/models"
	"github.com/spf13/cobra"
)

func (a *App) newUsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List the other users of the marketplace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			users, err := a.adapter.ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			printUsers(a.out, users)
			return nil
		},
	}
}

func (a *App) newBooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Browse and list textbooks",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List books available for sale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			books, err := a.adapter.ListBooks(cmd.Context())
			if err != nil {
				return err
			}

			printBooks(a.out, books)
			return nil
		},
	}

	var request models.CreateBookRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "List a book for sale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			book, err := a.adapter.AddBook(cmd.Context(), request)
			if err != nil {
				return err
			}

			printTitle(a.out, "Book added")
			printBooks(a.out, []models.Book{book})
			return nil
		},
	}

	flags := add.Flags()
	flags.StringVar(&request.Title, "title", "", "book title")
	flags.StringVar(&request.Author, "author", "", "author")
	flags.StringVar(&request.Subject, "subject", "", "course subject")
	flags.StringVar(&request.Condition, "condition", "", "physical condition")
	flags.StringVar(&request.Description, "description", "", "free-form description")
	requireFlags(add, "title", "author")

	cmd.AddCommand(list, add)
	return cmd
}

func (a *App) newMessagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Send and read direct messages",
	}

	var request models.SendMessageRequest
	send := &cobra.Command{
		Use:   "send",
		Short: "Send a message to another user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			sent, err := a.adapter.SendMessage(cmd.Context(), request)
			if err != nil {
				return err
			}

			printTitle(a.out, "Message sent")
			printMessages(a.out, []models.Message{sent})
			return nil
		},
	}
	send.Flags().Int64Var(&request.ReceiverUserID, "to", 0, "receiver user ID")
	send.Flags().StringVarP(&request.Message, "text", "t", "", "message text")
	requireFlags(send, "to", "text")

	var otherUserID int64
	list := &cobra.Command{
		Use:   "list",
		Short: "Show the conversation with another user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			messages, err := a.adapter.GetConversation(cmd.Context(), otherUserID)
			if err != nil {
				return err
			}

			printMessages(a.out, messages)
			return nil
		},
	}
	list.Flags().Int64Var(&otherUserID, "with", 0, "other user ID")
	requireFlags(list, "with")

	cmd.AddCommand(send, list)
	return cmd
}

func (a *App) newTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Send tips and read your ledger",
	}

	var request models.CreateTransactionRequest
	send := &cobra.Command{
		Use:   "send",
		Short: "Tip another user for a book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			transaction, err := a.adapter.CreateTransaction(cmd.Context(), request)
			if err != nil {
				return err
			}

			printTitle(a.out, "Transaction created")
			printTransactions(a.out, []models.Transaction{transaction})
			return nil
		},
	}
	send.Flags().Int64Var(&request.ReceiverID, "to", 0, "receiver user ID")
	send.Flags().Int64Var(&request.BookID, "book", 0, "book ID")
	send.Flags().Float64Var(&request.Amount, "amount", 0, "tip amount")
	requireFlags(send, "to", "book", "amount")

	var userID int64
	list := &cobra.Command{
		Use:   "list",
		Short: "Show your transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireLogin(); err != nil {
				return err
			}

			if userID == 0 {
				profile, err := a.adapter.Profile(cmd.Context())
				if err != nil {
					return err
				}
				userID = profile.UserID
			}

			transactions, err := a.adapter.ListTransactions(cmd.Context(), userID)
			if err != nil {
				return err
			}

			printTransactions(a.out, transactions)
			return nil
		},
	}
	list.Flags().Int64Var(&userID, "user", 0, "user ID, defaults to the logged-in user")

	cmd.AddCommand(send, list)
	return cmd
}
