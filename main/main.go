// Command pngwire hides, recovers and strips byte payloads carried in extra
// PNG chunks.
//
//	pngwire encode --in cat.png --tag ruSt --msg "secret" [--out out.png] [--zstd]
//	pngwire decode --in out.png --tag ruSt [--zstd]
//	pngwire remove --in out.png --tag ruSt [--out clean.png]
//	pngwire print  --in out.png
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/rawbytedev/pngwire"
)

const configPath = "pngwire.yaml"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := pngwire.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pngwire:", err)
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "encode":
		err = cmdEncode(args, cfg)
	case "decode":
		err = cmdDecode(args, cfg)
	case "remove":
		err = cmdRemove(args, cfg)
	case "print":
		err = cmdPrint(args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "pngwire:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pngwire <encode|decode|remove|print> [flags]")
}

func cmdEncode(args []string, cfg pngwire.Config) error {
	fs := pflag.NewFlagSet("encode", pflag.ExitOnError)
	in := fs.StringP("in", "i", "", "input png")
	out := fs.StringP("out", "o", "", "output png (default: overwrite input)")
	tag := fs.StringP("tag", "t", cfg.Tag, "4-letter chunk type")
	msg := fs.StringP("msg", "m", "", "message to hide")
	useZstd := fs.Bool("zstd", cfg.Zstd, "compress the payload")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("encode: --in is required")
	}
	if *out == "" {
		*out = *in
	}

	img, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	s := pngwire.New(pngwire.Options{Zstd: *useZstd})
	enc, err := s.Embed(img, *tag, []byte(*msg))
	if err != nil {
		return err
	}
	return os.WriteFile(*out, enc, 0644)
}

func cmdDecode(args []string, cfg pngwire.Config) error {
	fs := pflag.NewFlagSet("decode", pflag.ExitOnError)
	in := fs.StringP("in", "i", "", "input png")
	tag := fs.StringP("tag", "t", cfg.Tag, "4-letter chunk type")
	useZstd := fs.Bool("zstd", cfg.Zstd, "decompress the payload")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("decode: --in is required")
	}

	img, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	s := pngwire.New(pngwire.Options{Zstd: *useZstd})
	msg, err := s.Extract(img, *tag)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", msg)
	return nil
}

func cmdRemove(args []string, cfg pngwire.Config) error {
	fs := pflag.NewFlagSet("remove", pflag.ExitOnError)
	in := fs.StringP("in", "i", "", "input png")
	out := fs.StringP("out", "o", "", "output png (default: overwrite input)")
	tag := fs.StringP("tag", "t", cfg.Tag, "4-letter chunk type")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("remove: --in is required")
	}
	if *out == "" {
		*out = *in
	}

	img, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	s := pngwire.New(pngwire.Options{})
	enc, err := s.Remove(img, *tag)
	if err != nil {
		return err
	}
	return os.WriteFile(*out, enc, 0644)
}

func cmdPrint(args []string) error {
	fs := pflag.NewFlagSet("print", pflag.ExitOnError)
	in := fs.StringP("in", "i", "", "input png")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("print: --in is required")
	}

	img, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	summaries, err := pngwire.List(img)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "CHUNK\tLENGTH\tCRC\tFLAGS\n")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%08x\t%s\n", s.Type, s.Length, s.CRC, flagString(s))
	}
	return tw.Flush()
}

func flagString(s pngwire.ChunkSummary) string {
	f := []byte("---")
	if s.Critical {
		f[0] = 'c'
	}
	if s.Public {
		f[1] = 'p'
	}
	if s.SafeToCopy {
		f[2] = 's'
	}
	return string(f)
}
