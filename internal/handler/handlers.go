// Package handler wires the HTTP surface: the unauthenticated gateway
// endpoint and the JWT-gated operator API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fredneedsausername/GateKeeper/internal/config"
	"github.com/fredneedsausername/GateKeeper/internal/service"
)

// Services bundles everything RegisterRoutes needs.
type Services struct {
	Ingest  service.IngestService
	Auth    service.AuthService
	Crew    service.CrewService
	Ships   service.ShipService
	Tags    service.TagService
	Logs    service.LogService
	Catalog service.CatalogService
}

// RegisterRoutes mounts all endpoints onto the Echo instance.
func RegisterRoutes(e *echo.Echo, svcs Services, cfg config.Config, logger *zap.Logger) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/gateway-endpoint", GatewayHandler(svcs.Ingest, cfg.Env, logger))

	e.POST("/api/auth/login", loginHandler(svcs.Auth, logger))

	api := e.Group("/api", JWTAuthMiddleware(cfg.JWTSecret))

	api.GET("/auth/me", meHandler())

	// ── Crew members ───────────────────────────────────────────────────────
	cm := api.Group("/crew-members")
	cm.GET("", listCrewMembersHandler(svcs.Crew, logger))
	cm.GET("/:id", getCrewMemberHandler(svcs.Crew))
	cm.POST("", createCrewMemberHandler(svcs.Crew, logger))
	cm.PUT("/:id", updateCrewMemberHandler(svcs.Crew, logger))
	cm.DELETE("/:id", deleteCrewMemberHandler(svcs.Crew, logger))

	// ── Ships ──────────────────────────────────────────────────────────────
	sh := api.Group("/ships")
	sh.GET("", listShipsHandler(svcs.Ships, logger))
	sh.GET("/:id", getShipHandler(svcs.Ships))
	sh.POST("", createShipHandler(svcs.Ships, logger))
	sh.PUT("/:id", updateShipHandler(svcs.Ships, logger))
	sh.DELETE("/:id", deleteShipHandler(svcs.Ships, logger))

	// ── Tags ───────────────────────────────────────────────────────────────
	tg := api.Group("/tags")
	tg.GET("", listTagsHandler(svcs.Tags, logger))
	tg.GET("/:id", getTagHandler(svcs.Tags))
	tg.POST("", createTagHandler(svcs.Tags, logger))
	tg.PUT("/:id", updateTagHandler(svcs.Tags, logger))
	tg.DELETE("/:id", deleteTagHandler(svcs.Tags, logger))

	// ── Unassigned tag entries ─────────────────────────────────────────────
	en := api.Group("/unassigned-entries")
	en.GET("", listEntriesHandler(svcs.Logs, logger))
	en.DELETE("/:id", deleteEntryHandler(svcs.Logs, logger))

	// ── Permanence logs ────────────────────────────────────────────────────
	pl := api.Group("/permanence-logs")
	pl.GET("", listLogsHandler(svcs.Logs, logger))
	pl.GET("/:id", getLogHandler(svcs.Logs))
	pl.POST("", createLogHandler(svcs.Logs, logger))
	pl.PUT("/:id", updateLogHandler(svcs.Logs, logger))
	pl.DELETE("/:id", deleteLogHandler(svcs.Logs, logger))

	// ── Catalog ────────────────────────────────────────────────────────────
	api.GET("/roles", listRolesHandler(svcs.Catalog, logger))
	sy := api.Group("/shipyards")
	sy.GET("", listShipyardsHandler(svcs.Catalog, logger))
	sy.POST("", createShipyardHandler(svcs.Catalog, logger))
	sy.DELETE("/:id", deleteShipyardHandler(svcs.Catalog, logger))
	ab := api.Group("/activator-beacons")
	ab.GET("", listActivatorBeaconsHandler(svcs.Catalog, logger))
	ab.POST("", createActivatorBeaconHandler(svcs.Catalog, logger))
	ab.DELETE("/:id", deleteActivatorBeaconHandler(svcs.Catalog, logger))
}

// ── Auth handlers ──────────────────────────────────────────────────────────

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func loginHandler(svc service.AuthService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req loginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		token, err := svc.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return writeError(c, logger, "Login", err)
		}
		return c.JSON(http.StatusOK, map[string]string{"access_token": token})
	}
}

func meHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := tokenClaims(c)
		return c.JSON(http.StatusOK, map[string]any{
			"user_id":  claims["user_id"],
			"username": claims["username"],
		})
	}
}

// ── Crew member handlers ───────────────────────────────────────────────────

type crewMemberRequest struct {
	Name   string `json:"name"`
	RoleID *int64 `json:"role_id"`
	ShipID *int64 `json:"ship_id"`
	TagID  *int64 `json:"tag_id"`
}

func (r crewMemberRequest) input() service.CrewMemberInput {
	return service.CrewMemberInput{Name: r.Name, RoleID: r.RoleID, ShipID: r.ShipID, TagID: r.TagID}
}

func listCrewMembersHandler(svc service.CrewService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := svc.List(c.Request().Context(), service.CrewListInput{
			CrewMemberName: c.QueryParam("crew_member_name"),
			ShipName:       c.QueryParam("ship_name"),
			RoleName:       c.QueryParam("role_name"),
			Page:           queryInt(c, "page"),
			PageSize:       queryInt(c, "page_size"),
		})
		if err != nil {
			return writeError(c, logger, "ListCrewMembers", err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

func getCrewMemberHandler(svc service.CrewService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		cm, err := svc.Get(c.Request().Context(), id)
		if err != nil {
			return writeError(c, nil, "", err)
		}
		return c.JSON(http.StatusOK, cm)
	}
}

func createCrewMemberHandler(svc service.CrewService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req crewMemberRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		cm, err := svc.Create(c.Request().Context(), req.input())
		if err != nil {
			return writeError(c, logger, "CreateCrewMember", err)
		}
		return c.JSON(http.StatusCreated, cm)
	}
}

func updateCrewMemberHandler(svc service.CrewService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		var req crewMemberRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		cm, err := svc.Update(c.Request().Context(), id, req.input())
		if err != nil {
			return writeError(c, logger, "UpdateCrewMember", err)
		}
		return c.JSON(http.StatusOK, cm)
	}
}

func deleteCrewMemberHandler(svc service.CrewService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		if err := svc.Delete(c.Request().Context(), id); err != nil {
			return writeError(c, logger, "DeleteCrewMember", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ── Ship handlers ──────────────────────────────────────────────────────────

type shipRequest struct {
	Name string `json:"name"`
}

func listShipsHandler(svc service.ShipService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := svc.List(c.Request().Context(), service.ShipListInput{
			Name:     c.QueryParam("name"),
			Page:     queryInt(c, "page"),
			PageSize: queryInt(c, "page_size"),
		})
		if err != nil {
			return writeError(c, logger, "ListShips", err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

func getShipHandler(svc service.ShipService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		ship, err := svc.Get(c.Request().Context(), id)
		if err != nil {
			return writeError(c, nil, "", err)
		}
		return c.JSON(http.StatusOK, ship)
	}
}

func createShipHandler(svc service.ShipService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req shipRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		ship, err := svc.Create(c.Request().Context(), req.Name)
		if err != nil {
			return writeError(c, logger, "CreateShip", err)
		}
		return c.JSON(http.StatusCreated, ship)
	}
}

func updateShipHandler(svc service.ShipService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		var req shipRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		ship, err := svc.Update(c.Request().Context(), id, req.Name)
		if err != nil {
			return writeError(c, logger, "UpdateShip", err)
		}
		return c.JSON(http.StatusOK, ship)
	}
}

func deleteShipHandler(svc service.ShipService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		if err := svc.Delete(c.Request().Context(), id); err != nil {
			return writeError(c, logger, "DeleteShip", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ── Tag handlers ───────────────────────────────────────────────────────────

type tagRequest struct {
	Name         string `json:"name"`
	MacAddress   string `json:"mac_address"`
	CrewMemberID *int64 `json:"crew_member_id"`
}

func (r tagRequest) input() service.TagInput {
	return service.TagInput{Name: r.Name, MacAddress: r.MacAddress, CrewMemberID: r.CrewMemberID}
}

func listTagsHandler(svc service.TagService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := svc.List(c.Request().Context(), service.TagListInput{
			Assigned: queryBool(c, "assigned"),
			Vacant:   queryBool(c, "vacant"),
			Page:     queryInt(c, "page"),
			PageSize: queryInt(c, "page_size"),
		})
		if err != nil {
			return writeError(c, logger, "ListTags", err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

func getTagHandler(svc service.TagService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		tag, err := svc.Get(c.Request().Context(), id)
		if err != nil {
			return writeError(c, nil, "", err)
		}
		return c.JSON(http.StatusOK, tag)
	}
}

func createTagHandler(svc service.TagService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req tagRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		tag, err := svc.Create(c.Request().Context(), req.input())
		if err != nil {
			return writeError(c, logger, "CreateTag", err)
		}
		return c.JSON(http.StatusCreated, tag)
	}
}

func updateTagHandler(svc service.TagService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		var req tagRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		tag, err := svc.Update(c.Request().Context(), id, req.input())
		if err != nil {
			return writeError(c, logger, "UpdateTag", err)
		}
		return c.JSON(http.StatusOK, tag)
	}
}

func deleteTagHandler(svc service.TagService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		if err := svc.Delete(c.Request().Context(), id); err != nil {
			return writeError(c, logger, "DeleteTag", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ── Entry handlers ─────────────────────────────────────────────────────────

func listEntriesHandler(svc service.LogService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := svc.ListEntries(c.Request().Context(), service.EntryListInput{
			Start:        c.QueryParam("start"),
			End:          c.QueryParam("end"),
			ShipyardName: c.QueryParam("shipyard_name"),
			TagName:      c.QueryParam("tag_name"),
			Page:         queryInt(c, "page"),
			PageSize:     queryInt(c, "page_size"),
		})
		if err != nil {
			return writeError(c, logger, "ListEntries", err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

func deleteEntryHandler(svc service.LogService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		if err := svc.DeleteEntry(c.Request().Context(), id); err != nil {
			return writeError(c, logger, "DeleteEntry", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ── Permanence log handlers ────────────────────────────────────────────────

type logRequest struct {
	CrewMemberID   int64  `json:"crew_member_id"`
	ShipyardID     int64  `json:"shipyard_id"`
	EntryTimestamp string `json:"entry_timestamp"`
	LeaveTimestamp string `json:"leave_timestamp"`
}

func (r logRequest) input() service.LogInput {
	return service.LogInput{
		CrewMemberID:   r.CrewMemberID,
		ShipyardID:     r.ShipyardID,
		EntryTimestamp: r.EntryTimestamp,
		LeaveTimestamp: r.LeaveTimestamp,
	}
}

func listLogsHandler(svc service.LogService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := svc.ListLogs(c.Request().Context(), service.LogListInput{
			Start:          c.QueryParam("start"),
			End:            c.QueryParam("end"),
			ShipyardName:   c.QueryParam("shipyard_name"),
			ShipName:       c.QueryParam("ship_name"),
			CrewMemberName: c.QueryParam("crew_member_name"),
			Page:           queryInt(c, "page"),
			PageSize:       queryInt(c, "page_size"),
		})
		if err != nil {
			return writeError(c, logger, "ListLogs", err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

func getLogHandler(svc service.LogService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		log, err := svc.GetLog(c.Request().Context(), id)
		if err != nil {
			return writeError(c, nil, "", err)
		}
		return c.JSON(http.StatusOK, log)
	}
}

func createLogHandler(svc service.LogService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req logRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		log, err := svc.CreateLog(c.Request().Context(), req.input())
		if err != nil {
			return writeError(c, logger, "CreateLog", err)
		}
		return c.JSON(http.StatusCreated, log)
	}
}

func updateLogHandler(svc service.LogService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		var req logRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		log, err := svc.UpdateLog(c.Request().Context(), id, req.input())
		if err != nil {
			return writeError(c, logger, "UpdateLog", err)
		}
		return c.JSON(http.StatusOK, log)
	}
}

func deleteLogHandler(svc service.LogService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		if err := svc.DeleteLog(c.Request().Context(), id); err != nil {
			return writeError(c, logger, "DeleteLog", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ── Catalog handlers ───────────────────────────────────────────────────────

func listRolesHandler(svc service.CatalogService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		roles, err := svc.ListRoles(c.Request().Context())
		if err != nil {
			return writeError(c, logger, "ListRoles", err)
		}
		return c.JSON(http.StatusOK, roles)
	}
}

func listShipyardsHandler(svc service.CatalogService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		yards, err := svc.ListShipyards(c.Request().Context())
		if err != nil {
			return writeError(c, logger, "ListShipyards", err)
		}
		return c.JSON(http.StatusOK, yards)
	}
}

func createShipyardHandler(svc service.CatalogService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req shipRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		yard, err := svc.CreateShipyard(c.Request().Context(), req.Name)
		if err != nil {
			return writeError(c, logger, "CreateShipyard", err)
		}
		return c.JSON(http.StatusCreated, yard)
	}
}

func deleteShipyardHandler(svc service.CatalogService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		if err := svc.DeleteShipyard(c.Request().Context(), id); err != nil {
			return writeError(c, logger, "DeleteShipyard", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

type activatorBeaconRequest struct {
	Number              int32 `json:"number"`
	ShipyardID          int64 `json:"shipyard_id"`
	IsFirstWhenEntering bool  `json:"is_first_when_entering"`
}

func listActivatorBeaconsHandler(svc service.CatalogService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		beacons, err := svc.ListActivatorBeacons(c.Request().Context())
		if err != nil {
			return writeError(c, logger, "ListActivatorBeacons", err)
		}
		return c.JSON(http.StatusOK, beacons)
	}
}

func createActivatorBeaconHandler(svc service.CatalogService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req activatorBeaconRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid request body"))
		}
		id, err := svc.CreateActivatorBeacon(c.Request().Context(), service.ActivatorBeaconInput{
			Number:              req.Number,
			ShipyardID:          req.ShipyardID,
			IsFirstWhenEntering: req.IsFirstWhenEntering,
		})
		if err != nil {
			return writeError(c, logger, "CreateActivatorBeacon", err)
		}
		return c.JSON(http.StatusCreated, map[string]int64{"id": id})
	}
}

func deleteActivatorBeaconHandler(svc service.CatalogService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errResp("invalid id"))
		}
		if err := svc.DeleteActivatorBeacon(c.Request().Context(), id); err != nil {
			return writeError(c, logger, "DeleteActivatorBeacon", err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// ── helpers ────────────────────────────────────────────────────────────────

func errResp(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// writeError maps service sentinels onto HTTP statuses. Anything unmapped is
// a 500 and gets logged; expected errors do not.
func writeError(c echo.Context, logger *zap.Logger, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errResp(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, errResp(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errResp(err.Error()))
	case errors.Is(err, service.ErrTagAlreadyAssigned),
		errors.Is(err, service.ErrMacAlreadyRegistered),
		errors.Is(err, service.ErrBeaconNumberTaken):
		return c.JSON(http.StatusConflict, errResp(err.Error()))
	}
	if logger != nil {
		logger.Error(op+" failed", zap.Error(err))
	}
	return c.JSON(http.StatusInternalServerError, errResp("internal error"))
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func queryInt(c echo.Context, name string) int {
	v, _ := strconv.Atoi(c.QueryParam(name))
	return v
}

func queryBool(c echo.Context, name string) bool {
	v, _ := strconv.ParseBool(c.QueryParam(name))
	return v
}
