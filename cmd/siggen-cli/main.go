package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/joho/godotenv"

	"github.com/wellboundhc/go-siggen/pkg/directory"
	"github.com/wellboundhc/go-siggen/pkg/format"
	"github.com/wellboundhc/go-siggen/pkg/render"
	"github.com/wellboundhc/go-siggen/pkg/session"
	"github.com/wellboundhc/go-siggen/pkg/signature"
	"github.com/wellboundhc/go-siggen/pkg/upload"

	siggen "github.com/wellboundhc/go-siggen"
)

func main() {
	// A missing .env is fine; explicit flags win anyway.
	_ = godotenv.Load()

	var (
		formatFlag    = flag.String("format", format.DefaultID, "signature format identifier")
		nameFlag      = flag.String("name", "", "employee name")
		titleFlag     = flag.String("title", "", "job title")
		phoneFlag     = flag.String("phone", "", "phone number")
		extensionFlag = flag.String("extension", "", "phone extension")
		emailFlag     = flag.String("email", "", "email address")
		imageFlag     = flag.String("image", "", "photo file to stage")
		rendererFlag  = flag.String("renderer", "email", "renderer to use (email or plaintext)")
		outputFlag    = flag.String("output", "", "output file (stdout if empty)")
		relayFlag     = flag.String("relay", envOr("SIGGEN_RELAY_URL", ""), "upload relay endpoint")
		dirFlag       = flag.String("directory", envOr("SIGGEN_DIRECTORY_URL", ""), "directory collaborator base URL")
		interactive   = flag.Bool("interactive", false, "prompt for fields instead of flags")
		addFlag       = flag.Bool("add", false, "append the record to the directory (uploads the photo first)")
		listFlag      = flag.Bool("list", false, "list directory employees and exit")
		extsFlag      = flag.Bool("extensions", false, "list phone extensions and exit")
		searchFirst   = flag.String("search-first", "", "search the directory by first name")
		searchLast    = flag.String("search-last", "", "search the directory by last name")
	)
	flag.Parse()

	ctx := context.Background()
	formats := format.NewDefaultRegistry()

	if *listFlag || *extsFlag || *searchFirst != "" || *searchLast != "" {
		runDirectoryQuery(ctx, *dirFlag, *listFlag, *extsFlag, *searchFirst, *searchLast)
		return
	}

	fields := signature.Fields{
		Name:      *nameFlag,
		Title:     *titleFlag,
		Phone:     *phoneFlag,
		Extension: *extensionFlag,
		Email:     *emailFlag,
	}
	formatID := *formatFlag
	if *interactive {
		fields, formatID = promptFields(formats, fields, formatID)
	}

	if err := signature.Validate(fields); err != nil {
		log.Fatalf("incomplete record: %v", err)
	}

	var dirClient *directory.Client
	if *addFlag {
		client, err := newDirectoryClient(ctx, *dirFlag)
		if err != nil {
			log.Fatalf("directory: %v", err)
		}
		dirClient = client
	}

	sess := session.New(formats, upload.NewClient(*relayFlag), dirClient)
	sess.SetFields(fields)
	if err := sess.SelectFormat(formatID); err != nil {
		log.Fatalf("format: %v", err)
	}

	if *imageFlag != "" {
		file, err := os.Open(*imageFlag)
		if err != nil {
			log.Fatalf("open image: %v", err)
		}
		err = sess.SelectImage(ctx, file)
		file.Close()
		if err != nil {
			log.Fatalf("stage image: %v", err)
		}
	}

	if *addFlag {
		outcome, err := sess.AddToDirectory(ctx)
		if err != nil {
			log.Fatalf("add to directory: %v", err)
		}
		if outcome.Acknowledged {
			log.Printf("record stored (acknowledged)")
		} else {
			log.Printf("record dispatched (unconfirmed)")
		}
	} else if *imageFlag != "" && *relayFlag != "" {
		if _, err := sess.Commit(ctx); err != nil {
			log.Printf("upload failed, rendering with local preview: %v", err)
		}
	}

	generator, err := siggen.New(siggen.WithFormats(formats))
	if err != nil {
		log.Fatalf("build generator: %v", err)
	}
	renderer, err := generator.Renderers().Get(*rendererFlag)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}

	sig := sess.Signature()
	output, err := renderer.Render(ctx, sig, render.RenderOptions{})
	if err != nil {
		log.Fatalf("render signature: %v", err)
	}

	if *outputFlag != "" {
		if err := os.WriteFile(*outputFlag, output, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Signature written to %s\n", *outputFlag)
	} else {
		fmt.Println(string(output))
	}
}

func promptFields(formats *format.Registry, fields signature.Fields, formatID string) (signature.Fields, string) {
	questions := []*survey.Question{
		{Name: "name", Prompt: &survey.Input{Message: "Employee name:", Default: fields.Name}},
		{Name: "title", Prompt: &survey.Input{Message: "Job title:", Default: fields.Title}},
		{Name: "phone", Prompt: &survey.Input{Message: "Phone number:", Default: fields.Phone}},
		{Name: "extension", Prompt: &survey.Input{Message: "Extension:", Default: fields.Extension}},
		{Name: "email", Prompt: &survey.Input{Message: "Email address:", Default: fields.Email}},
	}
	answers := struct {
		Name      string
		Title     string
		Phone     string
		Extension string
		Email     string
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		log.Fatalf("prompt: %v", err)
	}

	selected := formatID
	if err := survey.AskOne(&survey.Select{
		Message: "Signature format:",
		Options: formats.List(),
		Default: formatID,
	}, &selected); err != nil {
		log.Fatalf("prompt: %v", err)
	}

	return signature.Fields{
		Name:      answers.Name,
		Title:     answers.Title,
		Phone:     answers.Phone,
		Extension: answers.Extension,
		Email:     answers.Email,
	}, selected
}

func runDirectoryQuery(ctx context.Context, baseURL string, list, exts bool, first, last string) {
	client, err := newDirectoryClient(ctx, baseURL)
	if err != nil {
		log.Fatalf("directory: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch {
	case list:
		employees, err := client.List(ctx)
		if err != nil {
			log.Fatalf("list employees: %v", err)
		}
		fmt.Fprintln(w, "NAME\tTITLE\tEXT\tEMAIL")
		for _, emp := range employees {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", emp.Name, emp.Title, emp.Extension, emp.Email)
		}
	case exts:
		extensions, err := client.Extensions(ctx)
		if err != nil {
			log.Fatalf("list extensions: %v", err)
		}
		fmt.Fprintln(w, "EXT\tNAME\tOUTBOUND")
		for _, ext := range extensions {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ext.Extension, ext.Name, ext.OutboundName)
		}
	default:
		result, err := client.Search(ctx, first, last)
		if err != nil {
			log.Fatalf("search: %v", err)
		}
		if !result.Found || result.Employee == nil {
			fmt.Println("No matching employee found.")
			return
		}
		emp := result.Employee
		fmt.Fprintf(w, "NAME\t%s\n", emp.Name)
		fmt.Fprintf(w, "TITLE\t%s\n", emp.Title)
		fmt.Fprintf(w, "PHONE\t%s\n", emp.Phone)
		fmt.Fprintf(w, "EXT\t%s\n", emp.Extension)
		fmt.Fprintf(w, "EMAIL\t%s\n", emp.Email)
		if emp.ImageURL != "" {
			fmt.Fprintf(w, "PHOTO\t%s\n", emp.ImageURL)
		}
	}
}

func newDirectoryClient(ctx context.Context, baseURL string) (*directory.Client, error) {
	options := []directory.Option{}
	if strings.TrimSpace(baseURL) != "" {
		options = append(options, directory.WithBaseURL(baseURL))
	}
	return directory.NewClient(ctx, options...)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
