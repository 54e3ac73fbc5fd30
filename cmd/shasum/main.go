// Package main is a command line SHA256 digest tool. It streams files or
// standard input through the hash engine and renders digests with the
// buffered hex encoder. A domain separation tag can be given to compute
// BIP-340 style tagged hashes; the tag preamble is compressed once and every
// input is hashed from that midstate.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"go-simpler.org/env"

	hashes "hashes.mleku.dev"
	"hashes.mleku.dev/chk"
	"hashes.mleku.dev/errorf"
	"hashes.mleku.dev/hex"
	"hashes.mleku.dev/log"
	"hashes.mleku.dev/lol"
	"hashes.mleku.dev/sha256"
)

type conf struct {
	LogLevel string `env:"LOG_LEVEL" default:"info" usage:"debug level: fatal error warn info debug trace"`
}

var args struct {
	Files []string `arg:"positional" help:"files to hash; reads standard input when none are given"`
	Tag   string   `help:"domain separation tag to compute tagged hashes with"`
	Upper bool     `help:"print digests in upper case"`
}

func fail(format string, a ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func main() {
	arg.MustParse(&args)
	var cfg conf
	if err := env.Load(&cfg, nil); err != nil {
		fail("error: loading environment: %s", err)
	}
	lol.SetLogLevel(cfg.LogLevel)
	log.D.F("shasum %s", hashes.Version)
	digitCase := hex.Lower
	if args.Upper {
		digitCase = hex.Upper
	}
	var tagged bool
	var mid sha256.Midstate
	if args.Tag != "" {
		tagged = true
		mid = sha256.HashTag([]byte(args.Tag))
		log.D.F("tag %q midstate %s", args.Tag, mid)
	}
	enc := hex.NewBufEncoder(make([]byte, 2*sha256.Size))
	if len(args.Files) == 0 {
		sum, err := hashReader(os.Stdin, tagged, mid)
		if chk.E(err) {
			fail("error: %s", err)
		}
		enc.PutBytes(sum[:], digitCase)
		fmt.Printf("%s  -\n", enc.String())
		return
	}
	for _, name := range args.Files {
		sum, err := hashFile(name, tagged, mid)
		if chk.E(err) {
			fail("error: %s", err)
		}
		enc.Clear()
		enc.PutBytes(sum[:], digitCase)
		fmt.Printf("%s  %s\n", enc.String(), name)
	}
}

func hashFile(name string, tagged bool, mid sha256.Midstate) (sum [sha256.Size]byte, err error) {
	var f *os.File
	if f, err = os.Open(name); err != nil {
		err = errors.Wrap(err, "opening input")
		return
	}
	defer f.Close()
	var fi os.FileInfo
	if fi, err = f.Stat(); err != nil {
		err = errors.Wrap(err, "inspecting input")
		return
	}
	if fi.IsDir() {
		err = errorf.E("%s is a directory", name)
		return
	}
	return hashReader(f, tagged, mid)
}

func hashReader(r io.Reader, tagged bool, mid sha256.Midstate) (sum [sha256.Size]byte, err error) {
	var d *sha256.Digest
	if tagged {
		d = sha256.NewFromMidstate(mid)
	} else {
		d = sha256.New()
	}
	if _, err = io.Copy(d, r); err != nil {
		err = errors.Wrap(err, "hashing input")
		return
	}
	sum = d.CheckSum()
	return
}
