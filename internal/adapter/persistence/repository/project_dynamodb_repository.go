package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"ktisk/internal/domain/entities"
	"ktisk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

// projectItem is the DynamoDB row. steps_json, tools_json, completed_steps
// and owned_items are opaque JSON columns; title_lc is a lowercased copy of
// the title because filter expressions cannot lowercase.
type projectItem struct {
	ID               string `dynamodbav:"id"`
	UserID           string `dynamodbav:"user_id"`
	Title            string `dynamodbav:"project_title"`
	TitleLC          string `dynamodbav:"title_lc"`
	IsPublic         bool   `dynamodbav:"is_public"`
	Status           string `dynamodbav:"status"`
	Difficulty       string `dynamodbav:"difficulty"`
	TimeEstimate     string `dynamodbav:"time_estimate"`
	ProfessionalCost string `dynamodbav:"professional_cost"`
	DIYCost          string `dynamodbav:"diy_cost"`
	StepsJSON        string `dynamodbav:"steps_json"`
	ToolsJSON        string `dynamodbav:"tools_json"`
	CompletedSteps   string `dynamodbav:"completed_steps"`
	OwnedItems       string `dynamodbav:"owned_items"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Ownership enforcement lives here: every mutation carries a condition
// expression on user_id, so a non-owner write fails the condition and is
// reported as the zero entity (zero rows affected), never as a silent
// success.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it, err := toProjectItem(p)
	if err != nil {
		return entities.Project{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Project, error) {
	return r.scan(ctx,
		"#user_id = :owner",
		map[string]string{"#user_id": "user_id"},
		map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	)
}

func (r *ProjectDynamoRepository) Search(ctx context.Context, term string, viewerID string) ([]entities.Project, error) {
	names := map[string]string{
		"#title_lc":  "title_lc",
		"#is_public": "is_public",
	}
	values := map[string]types.AttributeValue{
		":term":   &types.AttributeValueMemberS{Value: strings.ToLower(term)},
		":public": &types.AttributeValueMemberBOOL{Value: true},
	}

	filter := "contains(#title_lc, :term) AND #is_public = :public"
	if viewerID != "" {
		filter = "contains(#title_lc, :term) AND (#is_public = :public OR #user_id = :viewer)"
		names["#user_id"] = "user_id"
		values[":viewer"] = &types.AttributeValueMemberS{Value: viewerID}
	}

	return r.scan(ctx, filter, names, values)
}

func (r *ProjectDynamoRepository) UpdateProgress(ctx context.Context, id, ownerID string, completedStepIDs, ownedToolIDs []int, status entities.ProjectStatus) (entities.Project, error) {
	completed, err := marshalJSONColumn(completedStepIDs)
	if err != nil {
		return entities.Project{}, err
	}
	owned, err := marshalJSONColumn(ownedToolIDs)
	if err != nil {
		return entities.Project{}, err
	}

	return r.update(ctx, id, ownerID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #completed_steps = :completed_steps, #owned_items = :owned_items, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":completed_steps": &types.AttributeValueMemberS{Value: completed},
			":owned_items":     &types.AttributeValueMemberS{Value: owned},
			":status":          &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#completed_steps": "completed_steps",
			"#owned_items":     "owned_items",
			"#status":          "status",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProjectDynamoRepository) UpdateDetails(ctx context.Context, id, ownerID, title string, steps []entities.ProjectStep, completedStepIDs []int, status entities.ProjectStatus) (entities.Project, error) {
	stepsJSON, err := marshalJSONColumn(steps)
	if err != nil {
		return entities.Project{}, err
	}
	completed, err := marshalJSONColumn(completedStepIDs)
	if err != nil {
		return entities.Project{}, err
	}

	return r.update(ctx, id, ownerID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #project_title = :project_title, #title_lc = :title_lc, #steps_json = :steps_json, #completed_steps = :completed_steps, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":project_title":   &types.AttributeValueMemberS{Value: title},
			":title_lc":        &types.AttributeValueMemberS{Value: strings.ToLower(title)},
			":steps_json":      &types.AttributeValueMemberS{Value: stepsJSON},
			":completed_steps": &types.AttributeValueMemberS{Value: completed},
			":status":          &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#project_title":   "project_title",
			"#title_lc":        "title_lc",
			"#steps_json":      "steps_json",
			"#completed_steps": "completed_steps",
			"#status":          "status",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #user_id = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ProjectDynamoRepository) update(
	ctx context.Context,
	id, ownerID string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Project, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)
	values[":owner"] = &types.AttributeValueMemberS{Value: ownerID}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #user_id = :owner"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#user_id": "user_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Project{}, nil
	}
	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

// scan runs a filtered full scan, following pagination, and returns results
// newest first. The table is small enough that a scan beats maintaining a
// GSI per query scope.
func (r *ProjectDynamoRepository) scan(ctx context.Context, filter string, names map[string]string, values map[string]types.AttributeValue) ([]entities.Project, error) {
	projects := []entities.Project{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it projectItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			projects = append(projects, fromProjectItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

func toProjectItem(p entities.Project) (projectItem, error) {
	stepsJSON, err := marshalJSONColumn(p.Steps)
	if err != nil {
		return projectItem{}, err
	}
	toolsJSON, err := marshalJSONColumn(p.Tools)
	if err != nil {
		return projectItem{}, err
	}
	completed, err := marshalJSONColumn(p.CompletedStepIDs)
	if err != nil {
		return projectItem{}, err
	}
	owned, err := marshalJSONColumn(p.OwnedToolIDs)
	if err != nil {
		return projectItem{}, err
	}

	return projectItem{
		ID:               p.ID,
		UserID:           p.OwnerID,
		Title:            p.Title,
		TitleLC:          strings.ToLower(p.Title),
		IsPublic:         p.IsPublic,
		Status:           string(p.Status),
		Difficulty:       string(p.Difficulty),
		TimeEstimate:     p.TimeEstimate,
		ProfessionalCost: floatToString(p.ProfessionalCost),
		DIYCost:          floatToString(p.DIYCost),
		StepsJSON:        stepsJSON,
		ToolsJSON:        toolsJSON,
		CompletedSteps:   completed,
		OwnedItems:       owned,
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromProjectItem(it projectItem) entities.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	professionalCost, _ := strconv.ParseFloat(it.ProfessionalCost, 64)
	diyCost, _ := strconv.ParseFloat(it.DIYCost, 64)

	var steps []entities.ProjectStep
	_ = json.Unmarshal([]byte(it.StepsJSON), &steps)
	var tools []entities.ProjectTool
	_ = json.Unmarshal([]byte(it.ToolsJSON), &tools)
	completed := []int{}
	_ = json.Unmarshal([]byte(it.CompletedSteps), &completed)
	owned := []int{}
	_ = json.Unmarshal([]byte(it.OwnedItems), &owned)

	return entities.Project{
		ID:               it.ID,
		OwnerID:          it.UserID,
		Title:            it.Title,
		IsPublic:         it.IsPublic,
		Difficulty:       entities.Difficulty(it.Difficulty),
		TimeEstimate:     it.TimeEstimate,
		ProfessionalCost: professionalCost,
		DIYCost:          diyCost,
		Steps:            steps,
		Tools:            tools,
		CompletedStepIDs: completed,
		OwnedToolIDs:     owned,
		Status:           entities.ProjectStatus(it.Status),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

func marshalJSONColumn(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
