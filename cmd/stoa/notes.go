// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/stoa-vault/models"
)

func newNotesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "List, read and add notes",
	}
	cmd.AddCommand(
		newNotesListCmd(c),
		newNotesShowCmd(c),
		newNotesAddCmd(c),
	)
	return cmd
}

func newNotesListCmd(c *cli) *cobra.Command {
	var noteType, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes; works while the vault is locked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := models.NoteFilter{Search: search, Type: models.NoteType(noteType)}
			if filter.Type != "" && !filter.Type.Valid() {
				return fmt.Errorf("unknown note type %q", noteType)
			}

			notes, err := c.app.Services.Notes.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notes")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderNotesTable(notes))
			return nil
		},
	}
	cmd.Flags().StringVar(&noteType, "type", "", "Only notes of this type (journal|reflection|thought|archive)")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive title filter")
	return cmd
}

func newNotesShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Decrypt and print a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			note, err := c.app.Services.Notes.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if err = c.unlock(cmd); err != nil {
				return err
			}

			content, _, err := c.app.Services.Notes.Open(ctx, note.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", note.Title)
			fmt.Fprintf(out, "%s  ·  %s\n\n", note.Type, note.UpdatedAt.Local().Format("2006-01-02 15:04"))
			fmt.Fprintln(out, content)
			return nil
		},
	}
}

func newNotesAddCmd(c *cli) *cobra.Command {
	var noteType, title, content string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note; the body is read from stdin unless --content is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !cmd.Flags().Changed("content") {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read note content: %w", err)
				}
				content = strings.TrimRight(string(raw), "\n")
			}

			if err := c.unlock(cmd); err != nil {
				return err
			}

			note, err := c.app.Services.Notes.Create(ctx, models.NoteType(noteType))
			if err != nil {
				return err
			}
			if title == "" {
				title = note.Title
			}
			if note, err = c.app.Services.Notes.Save(ctx, note.ID, title, content); err != nil {
				return err
			}
			if len(tags) > 0 {
				if _, err = c.app.Services.Notes.SetTags(ctx, note.ID, tags); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), note.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&noteType, "type", string(models.Thought), "Note type (journal|reflection|thought|archive)")
	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&content, "content", "", "Note body")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag to attach; may be repeated")
	return cmd
}

func renderNotesTable(notes []models.Note) string {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		title := n.Title
		if n.IsPinned {
			title = "* " + title
		}
		rows = append(rows, []string{
			n.ID,
			string(n.Type),
			title,
			strings.Join(n.Tags, ","),
			n.UpdatedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TYPE", "TITLE", "TAGS", "UPDATED").
		Rows(rows...).
		String()
}
