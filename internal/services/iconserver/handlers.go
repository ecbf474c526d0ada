package iconserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/iconkit/internal/icons/name"
	"github.com/louisbranch/iconkit/internal/icons/provider"
	"github.com/louisbranch/iconkit/internal/icons/render"
	apperrors "github.com/louisbranch/iconkit/internal/platform/errors"
	platformicons "github.com/louisbranch/iconkit/internal/platform/icons"
	"github.com/louisbranch/iconkit/internal/platform/requestctx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/iconkit/internal/services/iconserver"

const (
	contentTypeSVG      = "image/svg+xml"
	contentTypeJSON     = "application/json"
	contentTypeMarkdown = "text/markdown; charset=utf-8"
)

type handler struct {
	registry    *provider.Registry
	defaults    render.Defaults
	cacheMaxAge time.Duration
}

// iconEntry is one row of the icon listing.
type iconEntry struct {
	Name  string `json:"name"`
	Kebab string `json:"kebab"`
}

type iconList struct {
	Count int         `json:"count"`
	Icons []iconEntry `json:"icons"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /icons", h.listIcons)
	mux.HandleFunc("GET /icons/{name}", h.renderIcon)
	mux.HandleFunc("GET /sprite.svg", h.sprite)
	mux.HandleFunc("GET /catalog.md", h.catalogMarkdown)
	return withRequestID(mux)
}

func (h *handler) listIcons(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer(tracerName).Start(r.Context(), "iconserver.list_icons")
	defer span.End()

	names := h.registry.Names()
	list := iconList{Count: len(names), Icons: make([]iconEntry, 0, len(names))}
	for _, canonical := range names {
		list.Icons = append(list.Icons, iconEntry{Name: canonical, Kebab: name.Kebab(canonical)})
	}
	span.SetAttributes(attribute.Int("icon.count", list.Count))
	writeJSON(w, http.StatusOK, list)
}

func (h *handler) renderIcon(w http.ResponseWriter, r *http.Request) {
	requested := strings.TrimSuffix(r.PathValue("name"), ".svg")
	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "iconserver.render_icon",
		trace.WithAttributes(
			attribute.String("icon.requested", requested),
			attribute.String("request.id", requestctx.RequestIDFromContext(r.Context())),
		))
	defer span.End()

	in, err := inputsFromQuery(requested, r.URL.Query())
	if err != nil {
		failSpan(span, err)
		writeError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := render.Component(h.registry, h.defaults, in).Render(ctx, &buf); err != nil {
		failSpan(span, err)
		writeError(w, r, err)
		return
	}
	span.SetAttributes(attribute.String("icon.name", name.Canonical(requested)))
	h.writeCacheHeaders(w)
	w.Header().Set("Content-Type", contentTypeSVG)
	_, _ = w.Write(buf.Bytes())
}

func (h *handler) sprite(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer(tracerName).Start(r.Context(), "iconserver.sprite")
	defer span.End()

	sheet, err := platformicons.LucideSprite(h.registry, h.defaults)
	if err != nil {
		failSpan(span, err)
		writeError(w, r, err)
		return
	}
	h.writeCacheHeaders(w)
	w.Header().Set("Content-Type", contentTypeSVG)
	_, _ = w.Write([]byte(sheet))
}

func (h *handler) catalogMarkdown(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", contentTypeMarkdown)
	_, _ = w.Write([]byte(platformicons.CatalogMarkdown()))
}

func (h *handler) writeCacheHeaders(w http.ResponseWriter) {
	if h.cacheMaxAge < 0 {
		w.Header().Set("Cache-Control", "no-store")
		return
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cacheMaxAge.Seconds())))
}

// inputsFromQuery maps query parameters onto renderer inputs. Unknown
// parameters are ignored.
func inputsFromQuery(requested string, query url.Values) (render.Inputs, error) {
	in := render.Inputs{
		Name:        requested,
		Color:       query.Get("color"),
		Size:        query.Get("size"),
		StrokeWidth: query.Get("stroke-width"),
		Class:       query.Get("class"),
	}
	if raw := strings.TrimSpace(query.Get("absolute-stroke-width")); raw != "" {
		absolute, err := strconv.ParseBool(raw)
		if err != nil {
			return render.Inputs{}, apperrors.WrapWithMetadata(
				apperrors.CodeIconInvalidStrokeWidth,
				fmt.Sprintf("invalid absolute-stroke-width %q", raw),
				map[string]string{"Value": raw},
				err,
			)
		}
		in.AbsoluteStrokeWidth = render.Bool(absolute)
	}
	return in, nil
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	status := code.HTTPStatus()
	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Printf("icon request %s failed: %v", requestctx.RequestIDFromContext(r.Context()), err)
		message = http.StatusText(status)
	}
	writeJSON(w, status, errorBody{Code: string(code), Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode json response: %v", err)
	}
}
