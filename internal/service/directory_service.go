package service

import (
	"context"
	"encoding/json"
	"fmt"
	"movie_catalog/configs"
	"movie_catalog/model"
	errorHandler "movie_catalog/pkg/error"
	"net/http"
	"strconv"
	"time"
)

// Directory lookups go against the main server over plain http. Both calls
// are treated as black-box RPC, a failed or slow directory never decides
// more than the spec allows (see notification/comment services).

type IDirectoryService interface {
	GetSubscribers(ctx context.Context) ([]string, error)
	GetNameEmail(ctx context.Context, userId int64) (*model.UserIdentity, error)
}

type DirectoryService struct {
	baseUrl    string
	httpClient *http.Client
}

func NewDirectoryService() *DirectoryService {
	return &DirectoryService{
		baseUrl: configs.GetConfigs().MainServerAddress,
		httpClient: &http.Client{
			Timeout: time.Duration(configs.GetConfigs().DirectoryTimeoutSec) * time.Second,
		},
	}
}

//------------------------------------------
//------------------------------------------

func (d *DirectoryService) GetSubscribers(ctx context.Context) ([]string, error) {
	apiUrl := d.baseUrl + "/v1/user/subscribers"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on calling subscribers api: %s", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("bad status: %s", resp.Status)
		errorMessage := fmt.Sprintf("Error on calling subscribers api: %s", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}

	var result model.SubscriberListRes
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result.Emails, nil
}

func (d *DirectoryService) GetNameEmail(ctx context.Context, userId int64) (*model.UserIdentity, error) {
	apiUrl := d.baseUrl + "/v1/user/identity/" + strconv.FormatInt(userId, 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on calling identity api: %s", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &model.UserIdentity{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("bad status: %s", resp.Status)
		errorMessage := fmt.Sprintf("Error on calling identity api: %s", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}

	var result model.UserIdentity
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
