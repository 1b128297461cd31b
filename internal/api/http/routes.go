package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/windwaves/internal/forecast"
	"github.com/i474232898/windwaves/internal/logger"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *forecast.Service, defaultThreshold float64) {
	h := &handlers{service: service, defaultThreshold: defaultThreshold}

	v1 := app.Group("/api/v1")
	v1.Get("/locations", h.listLocations)
	v1.Get("/locations/:name/forecast", h.locationForecast)
	v1.Get("/forecast", h.adHocForecast)
	v1.Get("/windwaves", h.windWaves)
	v1.Get("/lakes/:lake/outlook", h.lakeOutlook)

	// Legacy unversioned paths.
	app.Get("/windwaves.json", h.windWaves)
	app.Get("/weatherwindwaves.json", h.adHocForecast)
}

type handlers struct {
	service          *forecast.Service
	defaultThreshold float64
}

func (h *handlers) listLocations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"locations": h.service.Locations()})
}

func (h *handlers) locationForecast(c *fiber.Ctx) error {
	loc, err := h.service.Lookup(c.Params("name"))
	if err != nil {
		return toHTTPError(err)
	}

	q := forecastQuery{IdealWindDir: loc.IdealWindDir}
	if err := q.bindIdealWindDir(c); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	bundle, err := h.service.Forecast(c.UserContext(), loc, q.IdealWindDir)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(bundle)
}

// adHocForecast scores an arbitrary wave grid point against the weather of a
// coordinate, defaulting to the first configured location.
func (h *handlers) adHocForecast(c *fiber.Ctx) error {
	locs := h.service.Locations()
	if len(locs) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "no locations configured")
	}
	loc := locs[0]

	q := forecastQuery{
		Suffix:       c.Query("suffix", loc.WaveSuffix),
		Lat:          loc.Lat,
		Lon:          loc.Lon,
		IdealWindDir: forecast.DefaultIdealWindDir,
	}
	if err := q.bind(c); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	loc.WaveSuffix = q.Suffix
	loc.Lat = q.Lat
	loc.Lon = q.Lon
	loc.IdealWindDir = q.IdealWindDir

	bundle, err := h.service.Forecast(c.UserContext(), loc, q.IdealWindDir)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(bundle)
}

func (h *handlers) windWaves(c *fiber.Ctx) error {
	suffix := c.Query("suffix")
	if suffix == "" {
		if locs := h.service.Locations(); len(locs) > 0 {
			suffix = locs[0].WaveSuffix
		}
	}
	if err := validate.Var(suffix, suffixRule); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid suffix")
	}

	waves, err := h.service.WindWaves(c.UserContext(), suffix)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(waves)
}

func (h *handlers) lakeOutlook(c *fiber.Ctx) error {
	q := outlookQuery{Threshold: h.defaultThreshold}
	if err := q.bind(c); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	lake := c.Params("lake")
	hours, err := h.service.LakeOutlook(c.UserContext(), lake, q.Threshold)
	if err != nil {
		return toHTTPError(err)
	}
	if hours == nil {
		hours = []forecast.GoodHour{}
	}
	return c.JSON(fiber.Map{
		"lake":      lake,
		"threshold": q.Threshold,
		"hours":     hours,
	})
}

// suffixRule restricts a wave grid point suffix to a file name.
const suffixRule = "required,endswith=.txt,excludesall=/?#&"

// forecastQuery holds query parameters of the forecast endpoints.
type forecastQuery struct {
	Suffix       string  `validate:"required,endswith=.txt,excludesall=/?#&"`
	Lat          float64 `validate:"latitude"`
	Lon          float64 `validate:"longitude"`
	IdealWindDir int     `validate:"min=0,max=359"`
}

func (q *forecastQuery) bindIdealWindDir(c *fiber.Ctx) error {
	if v := c.Query("iwd"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("iwd must be an integer")
		}
		q.IdealWindDir = n
	}
	return validate.StructPartial(q, "IdealWindDir")
}

func (q *forecastQuery) bind(c *fiber.Ctx) error {
	for key, dst := range map[string]*float64{"lat": &q.Lat, "lon": &q.Lon} {
		if v := c.Query(key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return errors.New(key + " must be a number")
			}
			*dst = f
		}
	}
	if err := q.bindIdealWindDir(c); err != nil {
		return err
	}
	return validate.Struct(q)
}

// outlookQuery holds query parameters of the lake outlook endpoint.
type outlookQuery struct {
	Threshold float64 `validate:"gte=0"`
}

func (q *outlookQuery) bind(c *fiber.Ctx) error {
	if v := c.Query("threshold"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.New("threshold must be a number")
		}
		q.Threshold = f
	}
	return validate.Struct(q)
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, forecast.ErrUnknownLocation), errors.Is(err, forecast.ErrUnknownLake):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		logger.Error(err)
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
}
