package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"prokat-rental/internal/domain"
	"prokat-rental/internal/storefront"
	"prokat-rental/internal/utils"
)

type unknownCommandError struct {
	name string
}

func (e *unknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.name)
}

type app struct {
	session *storefront.Session
	out     io.Writer
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "catalog":
		return a.catalog(ctx, args)
	case "checkout":
		return a.checkout(ctx, args)
	case "orders":
		return a.orders(ctx, args)
	case "payments":
		return a.payments(ctx)
	case "profile":
		return a.profile(ctx, args)
	case "chat":
		return a.chat(ctx, args)
	default:
		return &unknownCommandError{name: command}
	}
}

func (a *app) catalog(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	category := fs.String("category", "all", "Category filter")
	search := fs.String("search", "", "Name search")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.session.Catalog.Refresh(ctx); err != nil {
		return err
	}
	items := a.session.Catalog.List(domain.EquipmentFilter{
		Category: domain.EquipmentCategory(*category),
		Search:   *search,
	})

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tНазвание\tКатегория\tЦена\tСтатус")
	for _, item := range items {
		label, err := storefront.EquipmentStatusLabel(item.Status)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d₽/%s\t%s\n", item.ID, item.Name, item.Category, item.Price, item.Period, label)
	}
	return tw.Flush()
}

func (a *app) checkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	itemList := fs.String("items", "", "Comma-separated equipment ids")
	start := fs.String("start", "", "Rental start date (default today)")
	end := fs.String("end", "", "Rental end date (default start plus rental days)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ids, err := parseIDs(*itemList)
	if err != nil {
		return err
	}
	var opts storefront.CommitOptions
	if *start != "" {
		if opts.Start, err = utils.ParseDate(*start); err != nil {
			return domain.NewValidationError("start", err.Error())
		}
	}
	if *end != "" {
		if opts.End, err = utils.ParseDate(*end); err != nil {
			return domain.NewValidationError("end", err.Error())
		}
	}

	if err := a.session.Catalog.Refresh(ctx); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := a.session.AddToCart(id); err != nil {
			return err
		}
	}

	receipt, err := a.session.Checkout(ctx, opts)
	if err != nil {
		return err
	}
	if receipt.PriceChanged() {
		fmt.Fprintf(a.out, "Внимание: сумма заказа изменилась с %d₽ на %d₽\n\n", receipt.LocalTotal, receipt.Order.Total)
	}
	fmt.Fprintln(a.out, receipt.Contract)
	return nil
}

func (a *app) orders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	reversed := fs.Bool("reversed", false, "Oldest first")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.session.History.Refresh(ctx); err != nil {
		return err
	}
	orders := a.session.History.List()
	if *reversed {
		orders = a.session.History.Reversed()
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "№\tДоговор\tОборудование\tПериод\tСумма\tСтатус")
	for _, o := range orders {
		label, err := storefront.StatusLabel(o.Status)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s - %s\t%d₽\t%s\n", o.ID, o.ContractNumber, o.Equipment, o.StartDate, o.EndDate, o.Total, label)
	}
	return tw.Flush()
}

func (a *app) payments(ctx context.Context) error {
	if err := a.session.History.Refresh(ctx); err != nil {
		return err
	}
	payments, err := a.session.History.Payments()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "№\tДоговор\tСумма\tОплата")
	for _, p := range payments {
		fmt.Fprintf(tw, "%d\t%s\t%d₽\t%s\n", p.Order.ID, p.Order.ContractNumber, p.Order.Total, p.Label)
	}
	return tw.Flush()
}

func (a *app) profile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	var sets setFlags
	fs.Var(&sets, "set", "Profile field as key=value (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := a.session.Profile.Load(ctx)
	if err != nil {
		return err
	}
	if len(sets) > 0 {
		for _, kv := range sets {
			if err := setProfileField(&client, kv); err != nil {
				return err
			}
		}
		if err := a.session.Profile.Save(ctx, client); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Профиль сохранён")
	}
	printProfile(a.out, a.session.Profile.Current())
	return nil
}

func (a *app) chat(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if _, _, err := a.session.Chat.Send(ctx, text); err != nil {
		return err
	}
	for _, msg := range a.session.Chat.Transcript() {
		who := "Менеджер"
		if msg.Sender == storefront.SenderClient {
			who = "Вы"
		}
		fmt.Fprintf(a.out, "%s: %s\n", who, msg.Text)
	}
	return nil
}

func parseIDs(list string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, domain.NewValidationError("items", fmt.Sprintf("invalid equipment id %q", part))
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, &storefront.EmptyCartError{}
	}
	return ids, nil
}

// describe turns session errors into the notices the storefront shows
func describe(err error) string {
	var (
		netErr   *storefront.NetworkError
		emptyErr *storefront.EmptyCartError
		badErr   *storefront.MalformedResponseError
		valErr   *storefront.ValidationError
	)
	switch {
	case errors.As(err, &emptyErr):
		return "корзина пуста"
	case errors.As(err, &valErr):
		return valErr.Error()
	case errors.As(err, &netErr):
		return "сервис аренды недоступен, попробуйте позже (" + netErr.Error() + ")"
	case errors.As(err, &badErr):
		return "некорректный ответ сервиса (" + badErr.Error() + ")"
	default:
		return err.Error()
	}
}
