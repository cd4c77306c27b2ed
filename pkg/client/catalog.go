package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

func (c *Client) ListSeries(ctx context.Context) ([]api.Series, error) {
	var series []api.Series
	err := c.do(ctx, http.MethodGet, "/series", nil, &series, "")
	return series, err
}

func (c *Client) SearchSeries(ctx context.Context, query string) ([]api.Series, error) {
	var series []api.Series
	err := c.do(ctx, http.MethodGet, "/series/search?q="+url.QueryEscape(query), nil, &series, "")
	return series, err
}

func (c *Client) GetSeries(ctx context.Context, seriesID string) (api.Series, error) {
	var series api.Series
	err := c.do(ctx, http.MethodGet, "/series/"+url.PathEscape(seriesID), nil, &series, "")
	return series, err
}

func (c *Client) CreateSeries(ctx context.Context, input api.SeriesInput) (api.Series, error) {
	var series api.Series
	err := c.do(ctx, http.MethodPost, "/series", input, &series, "")
	return series, err
}

// UpdateSeries returns the series as stored after the update.
func (c *Client) UpdateSeries(ctx context.Context, seriesID string, input api.SeriesInput) (api.Series, error) {
	var series api.Series
	err := c.do(ctx, http.MethodPut, "/series/"+url.PathEscape(seriesID), input, &series, "")
	return series, err
}

func (c *Client) DeleteSeries(ctx context.Context, seriesID string) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodDelete, "/series/"+url.PathEscape(seriesID), nil, &resp, "")
	return resp, err
}

func (c *Client) ListSeasons(ctx context.Context, seriesID string) ([]api.Season, error) {
	var seasons []api.Season
	err := c.do(ctx, http.MethodGet, "/series/"+url.PathEscape(seriesID)+"/seasons", nil, &seasons, "")
	return seasons, err
}

func (c *Client) CreateSeason(ctx context.Context, input api.SeasonInput) (api.Season, error) {
	var season api.Season
	err := c.do(ctx, http.MethodPost, "/seasons", input, &season, "")
	return season, err
}

func (c *Client) UpdateSeason(ctx context.Context, seasonID string, input api.SeasonInput) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodPut, "/seasons/"+url.PathEscape(seasonID), input, &resp, "")
	return resp, err
}

func (c *Client) ListEpisodes(ctx context.Context, seasonID string) ([]api.Episode, error) {
	var episodes []api.Episode
	err := c.do(ctx, http.MethodGet, "/seasons/"+url.PathEscape(seasonID)+"/episodes", nil, &episodes, "")
	return episodes, err
}

// GetEpisode also counts a view on the backend.
func (c *Client) GetEpisode(ctx context.Context, episodeID string) (api.Episode, error) {
	var episode api.Episode
	err := c.do(ctx, http.MethodGet, "/episodes/"+url.PathEscape(episodeID), nil, &episode, "")
	return episode, err
}

func (c *Client) CreateEpisode(ctx context.Context, input api.EpisodeInput) (api.Episode, error) {
	var episode api.Episode
	err := c.do(ctx, http.MethodPost, "/episodes", input, &episode, "")
	return episode, err
}

func (c *Client) UpdateEpisode(ctx context.Context, episodeID string, input api.EpisodeInput) (api.Episode, error) {
	var episode api.Episode
	err := c.do(ctx, http.MethodPut, "/episodes/"+url.PathEscape(episodeID), input, &episode, "")
	return episode, err
}

func (c *Client) DeleteEpisode(ctx context.Context, episodeID string) (api.MessageResponse, error) {
	var resp api.MessageResponse
	err := c.do(ctx, http.MethodDelete, "/episodes/"+url.PathEscape(episodeID), nil, &resp, "")
	return resp, err
}
