package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/browser"

	"github.com/phyten/contrastx/internal/config"
	"github.com/phyten/contrastx/internal/web"
)

var openURL = browser.OpenURL

func (a *app) serveCmd(args []string) error {
	sa, err := parseServeArgs(args)
	if err != nil {
		return err
	}
	if sa.showHelp {
		a.printUsage()
		return nil
	}
	layers, err := config.LoadLayers(a.cwd, sa.configPath, a.getenv)
	if err != nil {
		return err
	}
	settings, err := layers.Serve(sa.flags)
	if err != nil {
		return err
	}
	srv, ln, err := newServer(settings, layers)
	if err != nil {
		return err
	}
	url := pageURL(settings.Addr, ln.Addr())
	log.Printf("contrastx serve listening on %s", url)
	if settings.Open {
		browser.Stdout = a.stderr
		browser.Stderr = a.stderr
		if err := openURL(url); err != nil {
			log.Printf("could not open browser: %v", err)
		}
	}
	return srv.Serve(ln)
}

// newServer builds the mux with API defaults from the check layers and
// binds the listener, so a busy port fails before any browser is opened.
func newServer(settings config.ServeSettings, layers config.Layers) (*http.Server, net.Listener, error) {
	_, def, err := checkOptions(layers, checkArgs{})
	if err != nil {
		return nil, nil, err
	}
	mux := http.NewServeMux()
	web.Register(mux, def)

	ln, err := net.Listen("tcp", net.JoinHostPort(settings.Addr, strconv.Itoa(settings.Port)))
	if err != nil {
		return nil, nil, err
	}
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv, ln, nil
}

func pageURL(host string, addr net.Addr) string {
	port := ""
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s/", net.JoinHostPort(host, port))
}
